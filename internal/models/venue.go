package models

// Venue represents a place that books artists
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	FacebookLink       string   `json:"facebook_link"`
	ImageLink          string   `json:"image_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// VenueSummary is the short form of a venue used by listings and search
type VenueSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	City             string `json:"-"`
	State            string `json:"-"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea groups the venues that share a city and state
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueDetail is a venue together with its shows, split around "now"
type VenueDetail struct {
	Venue
	PastShows          []ShowListing `json:"past_shows"`
	UpcomingShows      []ShowListing `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

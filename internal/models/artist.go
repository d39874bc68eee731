package models

// Artist represents a performer looking for venues
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	FacebookLink       string   `json:"facebook_link"`
	ImageLink          string   `json:"image_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// ArtistSummary is the short form of an artist used by the listing page
type ArtistSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArtistDetail is an artist together with its shows, split around "now"
type ArtistDetail struct {
	Artist
	PastShows          []ShowListing `json:"past_shows"`
	UpcomingShows      []ShowListing `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

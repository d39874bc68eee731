package models

import "time"

// Show is a booking of one artist at one venue
type Show struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowListing is a show joined with the display fields of its artist and venue.
// Detail pages only fill the counterpart's side.
type ShowListing struct {
	ID              int64     `json:"id"`
	VenueID         int64     `json:"venue_id,omitempty"`
	VenueName       string    `json:"venue_name,omitempty"`
	VenueImageLink  string    `json:"venue_image_link,omitempty"`
	ArtistID        int64     `json:"artist_id,omitempty"`
	ArtistName      string    `json:"artist_name,omitempty"`
	ArtistImageLink string    `json:"artist_image_link,omitempty"`
	StartTime       time.Time `json:"start_time"`
}

// SearchMatch is one search hit
type SearchMatch struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResult is the response of a name search
type SearchResult struct {
	Count int           `json:"count"`
	Data  []SearchMatch `json:"data"`
}

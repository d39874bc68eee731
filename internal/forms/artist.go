package forms

import (
	"net/url"

	"fyyur/internal/models"
)

// ArtistForm is the input of the new and edit artist pages.
type ArtistForm struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	FacebookLink       string
	ImageLink          string
	WebsiteLink        string
	SeekingVenue       bool
	SeekingDescription string
}

// NewArtistForm returns the blank form shown by the create page.
func NewArtistForm() ArtistForm {
	return ArtistForm{SeekingVenue: true}
}

// ParseArtistForm reads a submitted artist form.
func ParseArtistForm(values url.Values) ArtistForm {
	return ArtistForm{
		Name:               text(values, "name"),
		City:               text(values, "city"),
		State:              text(values, "state"),
		Phone:              text(values, "phone"),
		Genres:             genres(values),
		FacebookLink:       text(values, "facebook_link"),
		ImageLink:          text(values, "image_link"),
		WebsiteLink:        text(values, "website_link"),
		SeekingVenue:       checkbox(values, "seeking_venue"),
		SeekingDescription: text(values, "seeking_description"),
	}
}

// ArtistFormFrom pre-populates the edit page from a stored artist.
func ArtistFormFrom(a models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             append([]string(nil), a.Genres...),
		FacebookLink:       a.FacebookLink,
		ImageLink:          a.ImageLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// Validate checks that the required fields are present.
func (f ArtistForm) Validate() error {
	var c checker
	c.required("name", f.Name)
	c.required("city", f.City)
	c.required("state", f.State)
	return c.err()
}

// Artist converts the form into an artist record without an ID.
func (f ArtistForm) Artist() models.Artist {
	return models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

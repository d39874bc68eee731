package forms

import (
	"net/url"

	"fyyur/internal/models"
)

// VenueForm is the input of the new and edit venue pages.
type VenueForm struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	FacebookLink       string
	ImageLink          string
	WebsiteLink        string
	SeekingTalent      bool
	SeekingDescription string
}

// NewVenueForm returns the blank form shown by the create page.
func NewVenueForm() VenueForm {
	return VenueForm{SeekingTalent: true}
}

// ParseVenueForm reads a submitted venue form.
func ParseVenueForm(values url.Values) VenueForm {
	return VenueForm{
		Name:               text(values, "name"),
		City:               text(values, "city"),
		State:              text(values, "state"),
		Address:            text(values, "address"),
		Phone:              text(values, "phone"),
		Genres:             genres(values),
		FacebookLink:       text(values, "facebook_link"),
		ImageLink:          text(values, "image_link"),
		WebsiteLink:        text(values, "website_link"),
		SeekingTalent:      checkbox(values, "seeking_talent"),
		SeekingDescription: text(values, "seeking_description"),
	}
}

// VenueFormFrom pre-populates the edit page from a stored venue.
func VenueFormFrom(v models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             append([]string(nil), v.Genres...),
		FacebookLink:       v.FacebookLink,
		ImageLink:          v.ImageLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// Validate checks that the required fields are present.
func (f VenueForm) Validate() error {
	var c checker
	c.required("name", f.Name)
	c.required("city", f.City)
	c.required("state", f.State)
	if len(f.Genres) == 0 {
		c.fail("genres", "needs at least one genre")
	}
	return c.err()
}

// Venue converts the form into a venue record without an ID.
func (f VenueForm) Venue() models.Venue {
	return models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             f.Genres,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

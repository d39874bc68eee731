package forms

import (
	"net/url"
	"strconv"
	"time"

	"fyyur/internal/models"
)

// StartTimeLayouts are the accepted start_time formats, tried in order.
var StartTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// ShowForm is the input of the new show page.
type ShowForm struct {
	ArtistID  string
	VenueID   string
	StartTime string
}

// NewShowForm returns the blank form, with the start time set to now.
func NewShowForm(now time.Time) ShowForm {
	return ShowForm{StartTime: now.Format(StartTimeLayouts[0])}
}

// ParseShowForm reads a submitted show form.
func ParseShowForm(values url.Values) ShowForm {
	return ShowForm{
		ArtistID:  text(values, "artist_id"),
		VenueID:   text(values, "venue_id"),
		StartTime: text(values, "start_time"),
	}
}

// Show validates the form and converts it into a show record. An empty start
// time yields the zero time, which the store replaces with the current time.
// Times without a zone are read in loc.
func (f ShowForm) Show(loc *time.Location) (models.Show, error) {
	var c checker
	var show models.Show

	show.ArtistID = positiveID(&c, "artist_id", f.ArtistID)
	show.VenueID = positiveID(&c, "venue_id", f.VenueID)

	if f.StartTime != "" {
		start, ok := parseStartTime(f.StartTime, loc)
		if !ok {
			c.fail("start_time", "is not a valid date and time")
		}
		show.StartTime = start
	}

	if err := c.err(); err != nil {
		return models.Show{}, err
	}
	return show, nil
}

func positiveID(c *checker, field, value string) int64 {
	if value == "" {
		c.fail(field, "is required")
		return 0
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		c.fail(field, "must be a positive number")
		return 0
	}
	return id
}

func parseStartTime(value string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range StartTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

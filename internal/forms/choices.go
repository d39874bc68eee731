package forms

import "slices"

// Choice is one option of a select input.
type Choice struct {
	Value string
	Label string
}

// GenreChoices are the genres offered by the venue and artist forms.
var GenreChoices = labelled(
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
	"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop",
	"Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
)

// StateChoices are the US state codes offered by the venue and artist forms.
var StateChoices = labelled(
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "ID",
	"IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH", "NJ", "NM",
	"NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA",
	"RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
)

func labelled(values ...string) []Choice {
	out := make([]Choice, len(values))
	for i, v := range values {
		out[i] = Choice{Value: v, Label: v}
	}
	return out
}

// WithCurrent returns choices followed by every non-empty value they lack, so
// a stored value outside the list still renders as a selectable option.
func WithCurrent(choices []Choice, values ...string) []Choice {
	out := choices
	for _, v := range values {
		if v == "" || slices.ContainsFunc(out, func(c Choice) bool { return c.Value == v }) {
			continue
		}
		out = append(slices.Clip(out), Choice{Value: v, Label: v})
	}
	return out
}

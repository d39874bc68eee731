// Package forms declares the input expected by the create and edit pages and
// converts submitted values to and from the models. Only the presence of
// required fields is checked; phone numbers and links are stored as given.
package forms

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ValidationError lists the fields of a submission that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, e.Fields[name]))
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	_, ok := e.Fields[field]
	return ok
}

type checker struct {
	fields map[string]string
}

func (c *checker) required(field, value string) {
	if value == "" {
		c.fail(field, "is required")
	}
}

func (c *checker) fail(field, msg string) {
	if c.fields == nil {
		c.fields = make(map[string]string)
	}
	if _, seen := c.fields[field]; !seen {
		c.fields[field] = msg
	}
}

func (c *checker) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}

func text(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

// checkbox follows HTML semantics: an unchecked box is simply absent.
func checkbox(values url.Values, key string) bool {
	switch strings.ToLower(text(values, key)) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

// genres reads every submitted "genres" value. Each value may itself be a
// comma separated list, so a multi-select and a single text input both
// produce the same ordered slice.
func genres(values url.Values) []string {
	var out []string
	for _, raw := range values["genres"] {
		for _, g := range strings.Split(raw, ",") {
			if g = strings.TrimSpace(g); g != "" {
				out = append(out, g)
			}
		}
	}
	return out
}

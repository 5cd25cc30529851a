// Package dates parses loosely formatted calendar dates from the command line.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layout is the date form the AP API expects in request paths.
const Layout = "2006-01-02"

var ErrUnrecognizedDate = errors.New("unrecognized date")

// Parse accepts ISO, US numeric and written-month dates and returns midnight
// UTC of the calendar day they name.
func Parse(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrUnrecognizedDate)
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnrecognizedDate, raw, err)
	}

	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

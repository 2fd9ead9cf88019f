package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat selects how a show start time is rendered for display.
type TimeFormat string

const (
	// TimeMedium renders e.g. "Sat 05, 21, 2019 9:30PM".
	TimeMedium TimeFormat = "medium"
	// TimeFull renders e.g. "Saturday May, 21, 2019 at 9:30PM".
	TimeFull TimeFormat = "full"
)

var timeLayouts = map[TimeFormat]string{
	TimeMedium: "Mon 01, 02, 2006 3:04PM",
	TimeFull:   "Monday January, 2, 2006 at 3:04PM",
}

// FormatShowTime renders t for display. Unknown formats fall back to TimeMedium.
func FormatShowTime(t time.Time, format TimeFormat) string {
	layout, ok := timeLayouts[format]
	if !ok {
		layout = timeLayouts[TimeMedium]
	}
	return t.Format(layout)
}

// showTimeLayouts are the start-time encodings accepted from forms, tried in order.
var showTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// ParseShowTime parses a start time submitted by a form.
// Times without a zone are interpreted in loc.
func ParseShowTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range showTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

// Package plan turns plain-text daily-plan files into an immutable schedule
// model. Parsing is forgiving: malformed content is skipped or nulled out,
// never an error.
package plan

import "time"

// Event is a single scheduled entry within a day. Start and End carry the
// enclosing day's date combined with the parsed clock times.
type Event struct {
	Start       time.Time
	End         time.Time
	Description string
}

// Day groups the events declared under one day-header line. HasDate is false
// when the header matched but its date could not be reconstructed; such a day
// still collects events but is never returned by date lookups.
type Day struct {
	Date    time.Time
	HasDate bool
	// Header keeps the original header line verbatim.
	Header string
	Events []Event
}

// Schedule is the result of parsing one plan file: days in file order.
// A repeated date header starts a new Day record rather than merging into
// the earlier one.
type Schedule struct {
	Days []Day
}

package plan

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

// Day headers look like "Monday, April 7th, 2025 - No Gym". The weekday token
// is captured but never validated against the computed date.
var headerPattern = regexp.MustCompile(`^([A-Za-z]+),\s+([A-Za-z]+)\s+(\d{1,2}(?:st|nd|rd|th)?),\s+(\d{4}).*`)

// Event lines look like "9:00 AM → 10:15 AM: Write report". The separator is
// the single arrow rune, not "-" or "->".
var eventPattern = regexp.MustCompile(`^(\d{1,2}:\d{2}\s*(?:AM|PM))\s*→\s*(\d{1,2}:\d{2}\s*(?:AM|PM)):\s*(.+)$`)

var ordinalSuffix = regexp.MustCompile(`st|nd|rd|th`)

const (
	headerDateLayout = "January 2 2006"
	clockLayout      = "3:04 PM"
)

// ReadFile reads and parses the plan file at path. The only error it returns
// is a failure to read the file itself; malformed content never fails.
func ReadFile(path string) (Schedule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Schedule{}, fmt.Errorf("read plan file %s: %w", path, err)
	}
	return Parse(string(b)), nil
}

// Parse converts raw plan text into a Schedule. Blank lines are skipped,
// unrecognized lines are ignored, and event lines before the first day header
// are discarded because there is no date to attach them to.
func Parse(text string) Schedule {
	var (
		days    []Day
		current *Day
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := headerPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				days = append(days, *current)
			}
			current = newDay(line, m)
			continue
		}

		m := eventPattern.FindStringSubmatch(line)
		if m == nil || current == nil {
			continue
		}
		if ev, ok := parseEvent(m, current); ok {
			current.Events = append(current.Events, ev)
		}
	}

	if current != nil {
		days = append(days, *current)
	}
	return Schedule{Days: days}
}

// newDay builds a Day from a matched header line. A date that cannot be
// reconstructed (e.g. "February 30") leaves HasDate false; the block still
// collects events.
func newDay(line string, m []string) *Day {
	month, dayTok, year := m[2], m[3], m[4]
	dayNum := ordinalSuffix.ReplaceAllString(dayTok, "")

	d := &Day{Header: line}
	date, err := time.ParseInLocation(headerDateLayout, month+" "+dayNum+" "+year, time.Local)
	if err == nil {
		d.Date = date
		d.HasDate = true
	}
	return d
}

// parseEvent combines the matched clock times with the enclosing day's date.
// If either time fails to parse the whole line is dropped; a dateless day
// yields an event anchored on the zero date, which date lookups never reach.
func parseEvent(m []string, day *Day) (Event, bool) {
	start, err := time.Parse(clockLayout, strings.TrimSpace(m[1]))
	if err != nil {
		return Event{}, false
	}
	end, err := time.Parse(clockLayout, strings.TrimSpace(m[2]))
	if err != nil {
		return Event{}, false
	}
	return Event{
		Start:       combine(day.Date, start),
		End:         combine(day.Date, end),
		Description: m[3],
	}, true
}

func combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local)
}

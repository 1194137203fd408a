package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/parham-yz/secretary-in-terminal/core/plan"
)

const clockLayout = "03:04 PM"

var detailStart = regexp.MustCompile(`\s*[\[\(]`)

// formatEvent renders an event for the full-schedule view:
// "09:00 AM - 10:15 AM: Write report".
func formatEvent(ev plan.Event) string {
	return fmt.Sprintf("%s - %s: %s",
		ev.Start.Format(clockLayout), ev.End.Format(clockLayout), ev.Description)
}

// formatEventMain renders an event for the main view: the description with
// trailing detail stripped, padded so the time range lines up across rows.
func formatEventMain(ev plan.Event) string {
	return fmt.Sprintf("%-20s%s - %s",
		shortDescription(ev.Description),
		ev.Start.Format(clockLayout), ev.End.Format(clockLayout))
}

// shortDescription cuts the description at the first "[" or "(" so bracketed
// details stay off the main view.
func shortDescription(desc string) string {
	if loc := detailStart.FindStringIndex(desc); loc != nil {
		desc = desc[:loc[0]]
	}
	return strings.TrimSpace(desc)
}

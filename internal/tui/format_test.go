package tui

import (
	"testing"
	"time"

	"github.com/parham-yz/secretary-in-terminal/core/plan"
)

func TestShortDescription(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Write report", "Write report"},
		{"Standup [room 2]", "Standup"},
		{"Pairing (with Ana)", "Pairing"},
		{"Deep work [focus] (no calls)", "Deep work"},
	}
	for _, c := range cases {
		if got := shortDescription(c.in); got != c.want {
			t.Fatalf("%q: got %q want %q", c.in, got, c.want)
		}
	}
}

func TestFormatEvent(t *testing.T) {
	ev := plan.Event{
		Start:       time.Date(2025, time.April, 7, 9, 0, 0, 0, time.Local),
		End:         time.Date(2025, time.April, 7, 10, 15, 0, 0, time.Local),
		Description: "Write report",
	}
	if got := formatEvent(ev); got != "09:00 AM - 10:15 AM: Write report" {
		t.Fatalf("formatEvent: %q", got)
	}
	if got := formatEventMain(ev); got != "Write report        09:00 AM - 10:15 AM" {
		t.Fatalf("formatEventMain: %q", got)
	}
}

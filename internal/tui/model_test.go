package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parham-yz/secretary-in-terminal/core/agenda"
	"github.com/parham-yz/secretary-in-terminal/core/plan"
	"github.com/parham-yz/secretary-in-terminal/infra/logger"
	"github.com/parham-yz/secretary-in-terminal/infra/metrics"
)

const samplePlan = `Monday, April 7th, 2025 - No Gym
9:00 AM → 10:15 AM: Write report
11:00 AM → 12:00 PM: Review
`

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestModel(t *testing.T, now time.Time) Model {
	t.Helper()
	return New(plan.Parse(samplePlan), fixedClock{t: now},
		agenda.Options{ExcludeBreaks: true}, time.Minute,
		logger.NopLogger{}, metrics.NopRecorder{})
}

func at(hour, min int) time.Time {
	return time.Date(2025, time.April, 7, hour, min, 0, 0, time.Local)
}

func TestViewMainInProgress(t *testing.T) {
	view := newTestModel(t, at(9, 30)).View()
	for _, want := range []string{
		"Plan Scheduler",
		"Monday, April 07, 2025 09:30 AM",
		">> In-progress event:",
		"Write report        09:00 AM - 10:15 AM",
		"Time remaining:",
		"45 minutes",
		"Next upcoming event:",
		"Review              11:00 AM - 12:00 PM",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewMainIdleGap(t *testing.T) {
	view := newTestModel(t, at(10, 30)).View()
	if strings.Contains(view, "In-progress") {
		t.Fatalf("no event should be in progress:\n%s", view)
	}
	if !strings.Contains(view, "Upcoming event:") || !strings.Contains(view, "Review") {
		t.Fatalf("view missing upcoming event:\n%s", view)
	}
}

func TestViewMainAfterLastEvent(t *testing.T) {
	view := newTestModel(t, at(13, 0)).View()
	if !strings.Contains(view, "No event currently in progress.") {
		t.Fatalf("view missing idle message:\n%s", view)
	}
}

func TestViewMainNoSchedule(t *testing.T) {
	m := New(plan.Parse(samplePlan), fixedClock{t: time.Date(2025, time.April, 8, 9, 0, 0, 0, time.Local)},
		agenda.Options{}, time.Minute, logger.NopLogger{}, metrics.NopRecorder{})
	if !strings.Contains(m.View(), "No schedule found for today.") {
		t.Fatalf("view missing empty state:\n%s", m.View())
	}
}

func TestViewFullToggle(t *testing.T) {
	m := newTestModel(t, at(9, 30))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	m = next.(Model)
	view := m.View()
	if !strings.Contains(view, "Today's Full Schedule") {
		t.Fatalf("expected full view after 't':\n%s", view)
	}
	if !strings.Contains(view, "09:00 AM - 10:15 AM: Write report") {
		t.Fatalf("full view missing event listing:\n%s", view)
	}

	// In the full view "q" returns to the main view instead of quitting.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)
	if cmd != nil {
		t.Fatalf("'q' in full view must not quit")
	}
	if !strings.Contains(m.View(), "Plan Scheduler") {
		t.Fatalf("expected main view after 'q':\n%s", m.View())
	}
}

func TestQuitFromMainView(t *testing.T) {
	m := newTestModel(t, at(9, 30))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("'q' in main view must quit")
	}
}

func TestTickAdvancesClock(t *testing.T) {
	m := newTestModel(t, at(9, 30))
	m.clk = fixedClock{t: at(9, 31)}
	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("tick must schedule the next tick")
	}
	if !m.now.Equal(at(9, 31)) {
		t.Fatalf("tick must re-read the clock: %v", m.now)
	}
}

// Package agenda answers point-in-time questions about a parsed plan:
// which event is running now, and which one starts next.
package agenda

import (
	"sort"
	"strings"
	"time"

	"github.com/parham-yz/secretary-in-terminal/core/plan"
)

// Options controls evaluation behavior.
type Options struct {
	// ExcludeBreaks drops events whose description contains "break"
	// (case-insensitive) from next-event selection. It never affects
	// the current-event test.
	ExcludeBreaks bool
}

// Status is the result of evaluating a day at one instant. Either field is
// nil when no event qualifies.
type Status struct {
	Current *plan.Event
	Next    *plan.Event
}

// FindDay returns the first day in file order whose calendar date equals
// date. Duplicate headers for the same date produce multiple Day records;
// the earliest one in the source wins. Days without a valid date never match.
func FindDay(s plan.Schedule, date time.Time) (plan.Day, bool) {
	for _, d := range s.Days {
		if d.HasDate && sameDate(d.Date, date) {
			return d, true
		}
	}
	return plan.Day{}, false
}

// Evaluate computes the current and next event for a day at time now.
// Events are considered in start order (stable, so file order breaks ties);
// the stored order is never mutated. Current uses the half-open test
// start <= now < end, so an event ending exactly at now is no longer
// current. Next is the nearest strictly-future event regardless of whether
// something is currently running.
func Evaluate(day plan.Day, ok bool, now time.Time, opts Options) Status {
	if !ok {
		return Status{}
	}

	events := sortedByStart(day.Events)

	var st Status
	for i := range events {
		ev := &events[i]
		if st.Current == nil && !ev.Start.After(now) && now.Before(ev.End) {
			st.Current = ev
		}
		if st.Next == nil && ev.Start.After(now) {
			if !opts.ExcludeBreaks || !isBreak(*ev) {
				st.Next = ev
			}
		}
	}
	return st
}

// Upcoming returns every event starting strictly after now, in start order,
// honoring opts.ExcludeBreaks. The idle dashboard view shows the first two.
func Upcoming(day plan.Day, now time.Time, opts Options) []plan.Event {
	var out []plan.Event
	for _, ev := range sortedByStart(day.Events) {
		if !ev.Start.After(now) {
			continue
		}
		if opts.ExcludeBreaks && isBreak(ev) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// Remaining reports how long the current event still runs at time now,
// floored to whole minutes. Never negative for an event that passed the
// half-open containment test.
func Remaining(ev plan.Event, now time.Time) time.Duration {
	rem := ev.End.Sub(now)
	if rem < 0 {
		return 0
	}
	return rem.Truncate(time.Minute)
}

// RemainingMinutes is Remaining expressed as an integer minute count.
func RemainingMinutes(ev plan.Event, now time.Time) int {
	return int(Remaining(ev, now) / time.Minute)
}

// EventsByStart returns the day's events sorted by start time without
// mutating the stored order. The full-schedule view lists these directly.
func EventsByStart(day plan.Day) []plan.Event {
	return sortedByStart(day.Events)
}

func sortedByStart(events []plan.Event) []plan.Event {
	sorted := make([]plan.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}

func isBreak(ev plan.Event) bool {
	return strings.Contains(strings.ToLower(ev.Description), "break")
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

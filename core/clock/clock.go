// Package clock supplies the "now" used by schedule evaluation, either the
// real wall clock or a simulated one that advances at wall-clock rate from a
// chosen start point.
package clock

import "time"

// SimLayout is the accepted format for the --simulate flag.
const SimLayout = "2006-01-02 15:04"

// Clock yields the current instant, truncated to whole minutes to match the
// dashboard's refresh granularity.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now().Truncate(time.Minute)
}

// Simulated projects a user-chosen start instant forward at real rate:
// Now() = Start + (wall now - Anchor).
type Simulated struct {
	Start  time.Time
	Anchor time.Time
}

func (s Simulated) Now() time.Time {
	return s.Start.Add(time.Since(s.Anchor)).Truncate(time.Minute)
}

// NewSimulated parses value as SimLayout and anchors the simulation at the
// current wall time. An unparseable value falls back to the real current
// time, so the dashboard still starts.
func NewSimulated(value string) Simulated {
	start, err := time.ParseInLocation(SimLayout, value, time.Local)
	if err != nil {
		start = time.Now().Truncate(time.Minute)
	}
	return Simulated{Start: start, Anchor: time.Now()}
}

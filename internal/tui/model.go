// Package tui renders the live schedule dashboard. It owns no schedule
// logic: every frame re-evaluates the immutable parsed plan at the clock's
// current instant.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parham-yz/secretary-in-terminal/core/agenda"
	"github.com/parham-yz/secretary-in-terminal/core/clock"
	"github.com/parham-yz/secretary-in-terminal/core/plan"
	"github.com/parham-yz/secretary-in-terminal/infra/logger"
	"github.com/parham-yz/secretary-in-terminal/infra/metrics"
)

// soonMinutes is the threshold below which the remaining time switches to
// the alternate color.
const soonMinutes = 15

const divider = "========================================"

type tickMsg time.Time

// Model is the bubbletea model for the dashboard. It holds the parsed plan
// and the clock; everything shown is recomputed on each tick.
type Model struct {
	schedule plan.Schedule
	clk      clock.Clock
	opts     agenda.Options
	refresh  time.Duration
	log      logger.Logger
	rec      metrics.Recorder

	now      time.Time
	fullView bool
}

// New builds the dashboard model. refresh is the evaluation cadence; ticks
// are aligned to its boundaries so the display changes on the minute.
func New(schedule plan.Schedule, clk clock.Clock, opts agenda.Options, refresh time.Duration, log logger.Logger, rec metrics.Recorder) Model {
	return Model{
		schedule: schedule,
		clk:      clk,
		opts:     opts,
		refresh:  refresh,
		log:      log,
		rec:      rec,
		now:      clk.Now(),
	}
}

// Run starts the dashboard program on the alternate screen and blocks until
// the user quits or ctx is canceled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err == tea.ErrProgramKilled && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) tickCmd() tea.Cmd {
	// Align to the next refresh boundary on the wall clock, so the first
	// tick after startup lands on a whole minute.
	wall := time.Now()
	next := wall.Truncate(m.refresh).Add(m.refresh)
	return tea.Tick(next.Sub(wall), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// In the full view "q" goes back instead of quitting.
			if m.fullView {
				m.fullView = false
				return m, nil
			}
			return m, tea.Quit
		case "t":
			if !m.fullView {
				m.fullView = true
			}
			return m, nil
		}
	case tickMsg:
		m.now = m.clk.Now()
		m.rec.RecordRefresh()
		m.log.Debugf("refresh at %s", m.now.Format(clock.SimLayout))
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	day, ok := agenda.FindDay(m.schedule, m.now)
	if m.fullView {
		return m.viewFull(day, ok)
	}
	return m.viewMain(day, ok)
}

func (m Model) viewMain(day plan.Day, ok bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Plan Scheduler") + "\n")
	b.WriteString(normalStyle.Render(
		"Current Date & Time: "+m.now.Format("Monday, January 02, 2006 03:04 PM")) + "\n")
	b.WriteString(dividerStyle.Render(divider) + "\n\n")

	if !ok {
		b.WriteString(normalStyle.Render("No schedule found for today.") + "\n")
		return b.String()
	}

	st := agenda.Evaluate(day, ok, m.now, m.opts)
	upcoming := agenda.Upcoming(day, m.now, m.opts)

	if st.Current != nil {
		rem := agenda.RemainingMinutes(*st.Current, m.now)
		remStyle := remainingStyle
		if rem < soonMinutes {
			remStyle = remainingSoonStyle
		}
		b.WriteString(inProgressHeadStyle.Render(">> In-progress event:") + "\n")
		b.WriteString("  " + inProgressStyle.Render(formatEventMain(*st.Current)) + "\n")
		b.WriteString("  " + inProgressStyle.Render("Time remaining:     ") +
			remStyle.Render(formatMinutes(rem)) + "\n\n")

		if st.Next != nil {
			b.WriteString(nextHeadStyle.Render("Next upcoming event:") + "\n")
			b.WriteString("  " + normalStyle.Render(formatEventMain(*st.Next)) + "\n")
		} else {
			b.WriteString(normalStyle.Render("No further events for today.") + "\n")
		}
		return b.String()
	}

	if len(upcoming) > 0 {
		b.WriteString(upcomingHeadStyle.Render("Upcoming event:") + "\n")
		b.WriteString("  " + upcomingStyle.Render(formatEventMain(upcoming[0])) + "\n")
		if len(upcoming) > 1 {
			b.WriteString("\n" + nextHeadStyle.Render("Next upcoming event:") + "\n")
			b.WriteString("  " + normalStyle.Render(formatEventMain(upcoming[1])) + "\n")
		}
	} else {
		b.WriteString(normalStyle.Render("No event currently in progress.") + "\n")
	}
	return b.String()
}

func (m Model) viewFull(day plan.Day, ok bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Today's Full Schedule") + "\n")
	b.WriteString(dividerStyle.Render(divider) + "\n\n")

	if !ok {
		b.WriteString(normalStyle.Render("No schedule found for today.") + "\n")
		return b.String()
	}
	for _, ev := range agenda.EventsByStart(day) {
		b.WriteString("  " + normalStyle.Render(formatEvent(ev)) + "\n")
	}
	return b.String()
}

func formatMinutes(min int) string {
	return fmt.Sprintf("%d minutes", min)
}

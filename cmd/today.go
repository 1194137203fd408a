package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parham-yz/secretary-in-terminal/core/agenda"
	"github.com/parham-yz/secretary-in-terminal/core/clock"
	"github.com/parham-yz/secretary-in-terminal/core/plan"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's schedule once and exit",
	RunE:  printToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

// printToday is the scripting-friendly path: no alternate screen, no colors,
// one evaluation at the current (or simulated) time. Break events are always
// listed here, like the full-schedule view.
func printToday(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	schedule, err := plan.ReadFile(cfg.Plan.Path)
	if err != nil {
		return err
	}

	var clk clock.Clock = clock.System{}
	if simulate != "" {
		clk = clock.NewSimulated(simulate)
	}
	now := clk.Now()

	out := cmd.OutOrStdout()
	day, ok := agenda.FindDay(schedule, now)
	if !ok {
		fmt.Fprintln(out, "No schedule found for today.")
		return nil
	}

	fmt.Fprintln(out, day.Header)
	st := agenda.Evaluate(day, ok, now, agenda.Options{})
	for _, ev := range agenda.EventsByStart(day) {
		mark := " "
		switch {
		case st.Current != nil && ev == *st.Current:
			mark = ">"
		case st.Next != nil && ev == *st.Next:
			mark = "+"
		}
		fmt.Fprintf(out, "%s %s - %s: %s\n", mark,
			ev.Start.Format("03:04 PM"), ev.End.Format("03:04 PM"), ev.Description)
	}
	if st.Current != nil {
		fmt.Fprintf(out, "time remaining: %d minutes\n", agenda.RemainingMinutes(*st.Current, now))
	}
	return nil
}

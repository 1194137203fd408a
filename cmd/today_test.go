package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePlan = `Monday, April 7th, 2025 - No Gym
9:00 AM → 10:15 AM: Write report
11:00 AM → 12:00 PM: Review
`

func runToday(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer func() {
		planPath, simulate = "", ""
		cfgPath = "secretary.yaml"
	}()
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	return out.String()
}

func writePlan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.txt")
	if err := os.WriteFile(path, []byte(samplePlan), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	return path
}

func TestTodayDuringEvent(t *testing.T) {
	out := runToday(t, "today",
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--plan", writePlan(t),
		"--simulate", "2025-04-07 09:30")

	for _, want := range []string{
		"Monday, April 7th, 2025 - No Gym",
		"> 09:00 AM - 10:15 AM: Write report",
		"+ 11:00 AM - 12:00 PM: Review",
		"time remaining: 45 minutes",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTodayNoSchedule(t *testing.T) {
	out := runToday(t, "today",
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--plan", writePlan(t),
		"--simulate", "2025-04-08 09:30")
	if !strings.Contains(out, "No schedule found for today.") {
		t.Fatalf("output missing empty state:\n%s", out)
	}
}

// Package app wires configuration, the parsed plan, the clock and the
// dashboard together.
package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/parham-yz/secretary-in-terminal/config"
	"github.com/parham-yz/secretary-in-terminal/core/agenda"
	"github.com/parham-yz/secretary-in-terminal/core/clock"
	"github.com/parham-yz/secretary-in-terminal/core/plan"
	"github.com/parham-yz/secretary-in-terminal/infra/logger"
	"github.com/parham-yz/secretary-in-terminal/infra/metrics"
	"github.com/parham-yz/secretary-in-terminal/internal/tui"
)

// Service holds everything the dashboard needs for one run.
type Service struct {
	cfg      *config.Config
	schedule plan.Schedule
	clk      clock.Clock
	opts     agenda.Options
	log      logger.Logger
	rec      metrics.Recorder
	logFile  *os.File
}

// New loads the plan file and prepares the dashboard. A missing plan file is
// the one fatal error on this path; malformed plan content never is.
func New(cfg *config.Config, simulate string) (*Service, error) {
	svc := &Service{cfg: cfg, clk: clock.System{}}
	svc.opts = agenda.Options{ExcludeBreaks: !cfg.UI.IncludeBreaks}

	// The dashboard owns the terminal, so logs go to a file when one is
	// configured and are discarded otherwise.
	var w io.Writer = io.Discard
	if cfg.Logging.Path != "" {
		f, err := os.OpenFile(cfg.Logging.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			svc.logFile = f
			w = f
		}
	}
	svc.log = logger.NewZerologLoggerTo(w, "dashboard")

	schedule, err := plan.ReadFile(cfg.Plan.Path)
	if err != nil {
		svc.Close()
		return nil, err
	}
	svc.schedule = schedule

	if simulate != "" {
		svc.clk = clock.NewSimulated(simulate)
	}

	svc.rec = metrics.NopRecorder{}
	if cfg.Metrics.Enabled {
		rec, err := metrics.NewPromRecorder()
		if err != nil {
			svc.Close()
			return nil, err
		}
		svc.rec = rec
	}

	days, events := len(schedule.Days), 0
	for _, d := range schedule.Days {
		events += len(d.Events)
	}
	svc.rec.RecordParse(days, events)
	svc.log.Infof("plan loaded: %d days, %d events (run %s)", days, events, uuid.NewString())
	return svc, nil
}

// Run starts the metrics endpoint when enabled and blocks on the dashboard
// until the user quits or ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.Enabled {
		go func() {
			if err := metrics.StartServer(ctx, s.cfg.Metrics.Addr); err != nil {
				s.log.Errorf("metrics server: %v", err)
			}
		}()
	}
	refresh := time.Duration(s.cfg.UI.RefreshSeconds) * time.Second
	return tui.Run(ctx, tui.New(s.schedule, s.clk, s.opts, refresh, s.log, s.rec))
}

// Close releases the log file, if any.
func (s *Service) Close() error {
	if s.logFile != nil {
		return s.logFile.Close()
	}
	return nil
}

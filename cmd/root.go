package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/parham-yz/secretary-in-terminal/app"
	"github.com/parham-yz/secretary-in-terminal/config"
	"github.com/parham-yz/secretary-in-terminal/infra/logger"
)

var (
	cfgPath  string
	planPath string
	simulate string
)

var rootCmd = &cobra.Command{
	Use:   "secretary",
	Short: "Live terminal dashboard for a plain-text daily plan",
	Long: `secretary parses a plain-text plan file and shows the current and
upcoming events on a terminal dashboard that refreshes once a minute.

Keys: q quits, t shows the full day, q again returns.`,
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "secretary.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&planPath, "plan", "",
		"plan file path (defaults to config, then the "+config.PlanFileEnv+" env var, then plan.txt)")
	rootCmd.PersistentFlags().StringVar(&simulate, "simulate", "",
		`simulate the current datetime, e.g. "2025-04-07 09:30"`)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg, simulate)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	// The flag wins over both the config file and the environment.
	if planPath != "" {
		cfg.Plan.Path = planPath
	}
	return cfg, nil
}

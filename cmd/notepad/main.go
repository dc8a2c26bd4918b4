package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"notepad/internal/config"
)

const (
	AppName    = "Notepad"
	AppID      = "com.notepad.desktop"
	AppVersion = "1.0.0"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.App.LogLevel = level
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}

	application, err := NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("application initialization failed: %w", err)
	}

	if err := application.Run(ctx); err != nil {
		return fmt.Errorf("application execution failed: %w", err)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "notepad",
		Usage:   "Tabbed text editor that keeps its notes between sessions",
		Version: AppVersion,
		Action:  run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "notepad.yaml",
				Value:       "notepad.yaml",
				Sources:     cli.EnvVars("NOTEPAD_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Log level: debug, info, warn, error or disabled",
				Sources: cli.EnvVars("NOTEPAD_LOG_LEVEL"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "notepad: %v\n", err)
		os.Exit(1)
	}
}

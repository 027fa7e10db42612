package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/certquiz/internal/app"
	"github.com/abhisek/certquiz/internal/config"
	"github.com/abhisek/certquiz/internal/eventlog"
	"github.com/abhisek/certquiz/internal/quiz"
	"github.com/abhisek/certquiz/internal/screens/start"
	"github.com/abhisek/certquiz/internal/store"
)

// runApp resolves the configuration, opens the event store and the
// optional JSONL export, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := resolveConfig(cmd)
	ctx := cmd.Context()

	opts := start.Options{
		Source:          cfg.BankSource,
		InstantFeedback: cfg.InstantFeedback,
		Version:         version,
	}

	var observers []quiz.Observer

	if cfg.RecordEvents {
		st, err := openEventStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		rec := eventlog.NewRecorder(ctx, st.EventRepo())
		defer func() {
			if err := rec.Err(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: event store:", err)
			}
		}()
		observers = append(observers, rec)
	}

	if cfg.EventLogPath != "" {
		trail, err := eventlog.Open(cfg.EventLogPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := trail.Close(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: event log:", err)
			}
		}()
		observers = append(observers, trail)
	}

	if len(observers) > 0 {
		opts.Observer = eventlog.Tee(observers...)
	}
	return app.Run(opts)
}

// openEventStore opens the store at the configured path or the default
// XDG location.
func openEventStore(ctx context.Context, cfg config.Config) (*store.Store, error) {
	path := cfg.EventDBPath
	if path == "" {
		p, err := config.DefaultEventDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return store.Open(ctx, path)
}

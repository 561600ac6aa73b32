package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iamshubhamjangle/trackle/internal/config"
	"github.com/iamshubhamjangle/trackle/internal/logger"
	"github.com/iamshubhamjangle/trackle/internal/storage"
	"github.com/iamshubhamjangle/trackle/internal/tracker"
	"github.com/iamshubhamjangle/trackle/internal/view"
)

// app is the state shared by every command for one invocation.
var app struct {
	cfg     *config.Config
	log     zerolog.Logger
	db      *storage.DB
	tracker *tracker.Tracker
}

var rootCmd = &cobra.Command{
	Use:   "trackle",
	Short: "Track your progress through a list of practice problems",
	Long: `trackle keeps a personal list of practice problems grouped by tags,
with completion and star state, and imports or exports the list as a
spreadsheet.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		app.cfg = cfg
		app.log = logger.Setup(cfg.Log.Level, cfg.Log.Format)

		db, err := storage.Open(cfg.DB)
		if err != nil {
			return err
		}
		app.db = db
		app.log.Debug().Str("db", cfg.DB).Msg("database opened")

		opts := []tracker.Option{tracker.WithLogger(app.log)}
		if cfg.Seed != 0 {
			opts = append(opts, tracker.WithSession(view.NewSeededSession(cfg.Seed)))
		}
		app.tracker = tracker.New(db, opts...)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app.db == nil {
			return nil
		}
		if err := app.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, nil)
	},
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
}

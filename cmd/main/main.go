package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matt-steen/focus-board/pkg/app"
	"github.com/matt-steen/focus-board/pkg/config"
	"github.com/matt-steen/focus-board/pkg/controller"
	"github.com/matt-steen/focus-board/pkg/db"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

const (
	filePerms = 0o666
	dirPerms  = 0o755
)

type flags struct {
	config string
	db     string
	log    string
	debug  bool
}

func main() {
	var f flags

	rootCmd := &cobra.Command{
		Use:     "focus-board",
		Short:   "Kanban board with per-task time tracking and a focus timer",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}

	rootCmd.Flags().StringVarP(&f.config, "config", "c",
		filepath.Join(config.DefaultDir(), "config.yaml"), "Path to the YAML config file")
	rootCmd.Flags().StringVar(&f.db, "db", "", "Path to the SQLite database (overrides config)")
	rootCmd.Flags().StringVar(&f.log, "log", "", "Path to the log file (overrides config)")
	rootCmd.Flags().BoolVarP(&f.debug, "debug", "d", false, "Log at debug level")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, f flags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}

	if f.db != "" {
		cfg.DBPath = f.db
	}

	if f.log != "" {
		cfg.LogPath = f.log
	}

	if f.debug {
		cfg.LogLevel = "debug"
	}

	for _, path := range []string{cfg.DBPath, cfg.LogPath} {
		if err := os.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", path, err)
		}
	}

	logFile, err := os.OpenFile(cfg.LogPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(filePerms))
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}

	defer logFile.Close()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zerolog.SetGlobalLevel(level)

	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	})

	log.Info().Str("db", cfg.DBPath).Str("version", Version).Msg("starting application...")

	store, err := db.NewDatabase(ctx, cfg.DBPath)
	if err != nil {
		return err
	}

	defer store.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a := app.New(ctx, store, app.RealClock{}, app.Options{
		Location: cfg.Location(),
		Settings: cfg.PomodoroSettings(),
	})

	go a.Run(ctx, cfg.TickInterval)

	if err := controller.NewController(a).Go(); err != nil {
		return fmt.Errorf("error running ui: %w", err)
	}

	log.Info().Msg("exiting")

	return nil
}

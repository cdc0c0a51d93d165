package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Roneo412/httpsync/internal/config"
	"github.com/Roneo412/httpsync/internal/domain"
	"github.com/Roneo412/httpsync/internal/logger"
	"github.com/Roneo412/httpsync/internal/service"
)

var (
	cfgFile       string
	flagPath      string
	flagLoop      int
	flagIgnore    []string
	flagTimeout   int
	flagLogLevel  string
	flagLogFormat string
	flagLogFile   string
)

var rootCmd = &cobra.Command{
	Use:   "httpsync URL",
	Short: "Mirror a remote HTTP directory listing to a local path",
	Long: `httpsync mirrors a directory tree served through an auto-generated
HTML directory listing onto a local path. Subdirectories are discovered
recursively and files are downloaded when they are missing locally or
when their size differs from the remote Content-Length. Comparison is
done using only the file size.

Server side, cd to the directory to share and run for example:

    python -m http.server [PORT] [--directory DIR]

Serving local files to external interfaces exposes them; only share
files that can be considered public.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          run,
}

func init() {
	// Usage is silenced for runtime errors but still wanted when the
	// flags themselves do not parse.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.Println(cmd.UsageString())
		return err
	})

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default searches ., user config dir, ~/.httpsync)")
	rootCmd.Flags().StringVarP(&flagPath, "path", "p", ".", "directory to sync to")
	rootCmd.Flags().IntVarP(&flagLoop, "loop", "l", 0, "seconds between passes; 0 syncs once and quits")
	rootCmd.Flags().StringSliceVarP(&flagIgnore, "ignore", "i", nil, "filenames to ignore, case-insensitive substrings (default desktop.ini,thumbs.db)")
	rootCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "per-request HTTP timeout in seconds; 0 disables it")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagLogFormat, "log-format", "", "log format (text, json)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "also log to this file, with rotation")
}

// loadConfig merges the optional config file with CLI flag overrides
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		// A missing file is only fatal when --config named one
		if cfgFile == "" && errors.Is(err, domain.ErrConfigNotFound) {
			cfg = config.Default()
		} else {
			return nil, err
		}
	}

	cfg.URL = args[0]

	flags := cmd.Flags()
	if flags.Changed("path") {
		cfg.Path = flagPath
	}
	if flags.Changed("loop") {
		cfg.Loop = flagLoop
	}
	if flags.Changed("ignore") {
		cfg.Ignore = flagIgnore
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = flagLogFormat
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		File: logger.FileConfig{
			Enabled:    cfg.Log.File != "",
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			MaxBackups: cfg.Log.MaxBackups,
			Compress:   cfg.Log.Compress,
		},
	}); err != nil {
		return err
	}
	defer logger.Shutdown()

	svc, err := service.New(service.Options{
		URL:            cfg.URL,
		Path:           cfg.Path,
		Interval:       time.Duration(cfg.Loop) * time.Second,
		IgnorePatterns: cfg.Ignore,
		Timeout:        time.Duration(cfg.Timeout) * time.Second,
	})
	if err != nil {
		return err
	}

	// Interrupt cancels the polling loop cleanly; a pass in flight
	// runs to completion first.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return svc.Run(ctx)
}

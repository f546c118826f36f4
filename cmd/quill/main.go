// Package main is the entry point for the Quill editor.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// flags holds the command line options.
type flags struct {
	configPath string
	logLevel   string
	logFile    string
	watch      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "quill [file]",
		Short: "A small plain-text editor for the terminal",
		Long: `quill edits one plain-text file in the terminal.

Keys:
  arrows / shift+arrows   move / extend the selection
  home / end              document start / end
  ctrl+c ctrl+x ctrl+v    copy, cut, paste from the clipboard stack
  alt+v                   paste and pop the clipboard stack
  ctrl+d / ctrl+l         delete selection / clear document
  ctrl+s / ctrl+o         save / reload
  f1..f12                 run plugins in registration order
  ctrl+q                  quit`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cfg, file)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file path (default <user config dir>/quill/config.toml)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "reload the file when it changes on disk")

	return cmd
}

// defaultConfigPath returns the config file used when --config is not given.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quill", "config.toml")
}

// loadConfig reads the config file, then applies environment and flag
// overrides in that order.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	path := f.configPath
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if cmd.Flags().Changed("watch") {
		cfg.Editor.Watch = f.watch
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, file string) error {
	logger, closer := app.NewFileLogger(cfg.Log)
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}

	application, err := app.New(app.Options{
		Config: cfg,
		File:   file,
		Logger: logger,
		Screen: screen,
	})
	if err != nil {
		return err
	}
	defer application.Shutdown()

	// Quit through the event loop so the model is only touched there.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			_ = screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))
		}
	}()

	return application.Run()
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"memmatch/internal/config"
	"memmatch/internal/gui"
	"memmatch/internal/logger"
	"memmatch/internal/tui"
)

var (
	configFile string
	gridSize   int
	seed       int64
	fullscreen bool
	debug      bool
	logFile    string
)

// main registers commands and flags. Running without a subcommand opens
// the windowed game; exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "memmatch",
		Short: "playing card memory matching game",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()
			return gui.Run(cfg, seed, log)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&gridSize, "grid", 0, "grid size (4 or 6)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "shuffle seed (0 = random)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write log to file instead of stderr")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start fullscreen")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()
			return tui.Run(cfg, seed, log)
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}

	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath()
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	configShowCmd := &cobra.Command{
		Use:   "show [path]",
		Short: "print the effective config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				configFile = args[0]
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}

	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(tuiCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string { return "memmatch.yaml" }

// loadConfig resolves the effective config: the file if given or
// present, defaults otherwise, with flags overriding either.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	default:
		if loaded, err := config.Load(defaultConfigPath()); err == nil {
			cfg = loaded
		} else {
			cfg = config.DefaultConfig()
		}
	}

	if gridSize != 0 {
		cfg.GridSize = gridSize
	}
	if fullscreen {
		cfg.Window.Fullscreen = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup builds the config and logger shared by the frontends. The
// cleanup closes the log file, if any.
func setup() (*config.Config, *logger.Logger, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	cleanup := func() {}
	if !debug {
		return cfg, logger.Disabled(), cleanup, nil
	}

	opts := logger.Options{Level: "debug", Console: true}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open log file: %w", err)
		}
		opts.Writer = f
		opts.Console = false
		cleanup = func() { f.Close() }
	}

	log, err := logger.New(opts)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return cfg, log, cleanup, nil
}

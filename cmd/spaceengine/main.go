package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/san-kum/spaceengine/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	workers    int

	// run
	dt          float64
	steps       int
	sampleEvery int
	lyapunov    bool
	svgPath     string
	snapPath    string

	// gui
	menu bool

	// config
	writePath string

	cfg    *config.Constants
	logger *log.Logger
)

// main registers the commands and runs the window driver when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:               "spaceengine",
		Short:             "n-body orbit viewer",
		PersistentPreRunE: setup,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "solver workers (0 = config value)")

	guiCmd := &cobra.Command{
		Use:   "gui [scene]",
		Short: "open the orbit viewer window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&menu, "menu", false, "start on the scene picker")

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "run the orbit viewer in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a scene headlessly and report orbit metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep in seconds")
	runCmd.Flags().IntVar(&steps, "steps", 80000, "number of steps")
	runCmd.Flags().IntVar(&sampleEvery, "sample-every", 100, "steps between position samples")
	runCmd.Flags().BoolVar(&lyapunov, "lyapunov", false, "also estimate the largest Lyapunov exponent")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the sampled orbits, seen from above, to this SVG file")
	runCmd.Flags().StringVar(&snapPath, "snapshot", "", "write the final frame, seen from the scene camera, to this SVG file")

	benchCmd := &cobra.Command{
		Use:   "bench [scene]",
		Short: "benchmark the gravity solver",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list built-in scenes",
		RunE:  listScenes,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  printConfig,
	}
	configCmd.Flags().StringVar(&writePath, "write", "", "also save the configuration to this path")

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, benchCmd, scenesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and builds the root logger.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "spaceengine",
	})

	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.Debug("loaded config", "path", configFile)
	} else {
		cfg = config.Default()
	}

	if cmd.Flags().Changed("workers") {
		cfg.Physics.Workers = workers
	}
	if len(args) > 0 {
		cfg.Scene = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return nil
}

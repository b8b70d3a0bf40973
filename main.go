// bouncebox opens a window with a square that drifts, bounces off the edges
// and is pushed around with the arrow keys.
//
// Usage:
//
//	bouncebox                 - Run the game
//	bouncebox config          - Print the resolved config as YAML
//	bouncebox config --init   - Write the default config file
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.bouncebox/config.yaml, ./config.yaml)
//	--width, --height, --fps  - Override window settings
//	--debug          - Debug logging and the motion overlay
//	--watch          - Reload the config file when it changes
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/bouncebox/config"
)

// cliFlags holds the values bound to the persistent flags.
type cliFlags struct {
	configPath string
	width      int
	height     int
	fps        int
	debug      bool
	watch      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}
	rootCmd := &cobra.Command{
		Use:   "bouncebox",
		Short: "A bouncing square you can push with the arrow keys",
		Long: `bouncebox runs a fixed-size window with one square in it. The square
keeps its momentum, slows down through friction and bounces off the window
edges. Hold an arrow key to push it; Esc or P pauses.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGame(cmd, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to config file")
	pf.IntVar(&flags.width, "width", 0, "Window width in pixels")
	pf.IntVar(&flags.height, "height", 0, "Window height in pixels")
	pf.IntVar(&flags.fps, "fps", 0, "Tick rate (frames per second)")
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug logging and overlay")
	pf.BoolVar(&flags.watch, "watch", false, "Reload the config file on change")

	rootCmd.AddCommand(newConfigCmd(flags))
	return rootCmd
}

func newConfigCmd(flags *cliFlags) *cobra.Command {
	var initFile bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved config",
		Long: `Loads the config the same way the game does, applies flag overrides and
prints the result as YAML. With --init the embedded default is written to the
--config path (or ~/.bouncebox/config.yaml) instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if initFile {
				return runConfigInit(cmd, flags)
			}
			return runConfig(cmd, flags)
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "Write the default config file")
	return cmd
}

func newLogger(flags *cliFlags) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bouncebox",
	})
	if flags.debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// overrides returns a func applying the flags the user actually set.
func overrides(cmd *cobra.Command, flags *cliFlags) func(cfg *config.Config) {
	set := cmd.Flags()
	return func(cfg *config.Config) {
		if set.Changed("width") {
			cfg.Window.Width = flags.width
		}
		if set.Changed("height") {
			cfg.Window.Height = flags.height
		}
		if set.Changed("fps") {
			cfg.Window.MaxFPS = flags.fps
		}
	}
}

// loadConfig resolves the file, applies flag overrides and only then validates.
func loadConfig(cmd *cobra.Command, flags *cliFlags) (config.Config, string, error) {
	cfg, source, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, source, err
	}
	overrides(cmd, flags)(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, source, err
	}
	return cfg, source, nil
}

func runConfig(cmd *cobra.Command, flags *cliFlags) error {
	cfg, source, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, flags *cliFlags) error {
	path := flags.configPath
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		return fmt.Errorf("config: no --config path and no home directory")
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func runGame(cmd *cobra.Command, flags *cliFlags) error {
	logger := newLogger(flags)

	cfg, source, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)

	opts := Options{Debug: flags.debug, Override: overrides(cmd, flags)}
	if flags.watch {
		if source == config.EmbeddedSource {
			logger.Warn("--watch ignored: no config file on disk")
		} else {
			opts.WatchPath = source
		}
	}

	game, err := NewGame(cfg, logger, opts)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	applyWindow(cfg.Window)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/rtweekend/internal/app"
	"github.com/philipparndt/rtweekend/pkg/config"
	"github.com/philipparndt/rtweekend/version"
	"github.com/spf13/cobra"
)

var (
	configPath        string
	width             int
	height            int
	sourceOrientation bool

	backend     string
	scale       int
	watch       bool
	frames      int
	testPattern bool
)

var rootCmd = &cobra.Command{
	Use:   "rtweekend",
	Short: "Real-time ray traced sphere over a sky gradient",
	Long: `rtweekend casts one ray per pixel from a pinhole camera every frame,
shades a single sphere by its surface normal over a sky gradient and shows
the result in a window together with the current frame rate.

Press Escape or close the window to quit.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("scale") {
			cfg.Window.Scale = scale
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return app.Run(app.Options{
			Config:      cfg,
			ConfigPath:  configPath,
			Backend:     backend,
			Watch:       watch,
			TestPattern: testPattern,
			Frames:      frames,
		})
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "TOML config file")
	flags.IntVar(&width, "width", 0, "image width in pixels (overrides config)")
	flags.IntVar(&height, "height", 0, "image height in pixels (overrides config)")
	flags.BoolVar(&sourceOrientation, "source-orientation", false, "map pixel row 0 to the bottom of the viewport")

	rootCmd.Flags().StringVarP(&backend, "backend", "b", "raylib", "display backend: "+strings.Join(app.Backends(), ", "))
	rootCmd.Flags().IntVar(&scale, "scale", 0, "window scale factor (overrides config)")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the camera when the config file changes")
	rootCmd.Flags().IntVar(&frames, "frames", 1, "number of frames to render with the headless backend")
	rootCmd.Flags().BoolVar(&testPattern, "test-pattern", false, "show the gradient test image instead of the scene")
}

// buildConfig loads the config file and applies command line overrides
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("width") {
		cfg.Image.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Image.Height = height
	}
	if cmd.Flags().Changed("source-orientation") {
		cfg.Image.SourceOrientation = sourceOrientation
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

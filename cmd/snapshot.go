package cmd

import (
	"fmt"

	"github.com/philipparndt/rtweekend/internal/app"
	"github.com/philipparndt/rtweekend/pkg/snapshot"
	"github.com/spf13/cobra"
)

var (
	outputPath   string
	outputFormat string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render a single frame to an image file",
	Long:  "Render one frame without opening a window and write it as PNG or BMP. The format defaults to the output file extension.",
	Args:  cobra.NoArgs,
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&outputPath, "output", "o", "frame.png", "output file")
	snapshotCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "image format: png or bmp")
	snapshotCmd.Flags().BoolVar(&testPattern, "test-pattern", false, "write the gradient test image instead of the scene")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	format, err := resolveFormat(outputPath, outputFormat)
	if err != nil {
		return err
	}

	s, err := app.NewSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	s.SetTestPattern(testPattern)

	stats := s.Step()
	if err := snapshot.WriteFile(outputPath, s.Framebuffer(), format); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d, %s) in %v\n",
		outputPath, cfg.Image.Width, cfg.Image.Height, format, stats.Elapsed)
	return nil
}

func resolveFormat(path, explicit string) (snapshot.Format, error) {
	if explicit != "" {
		return snapshot.ParseFormat(explicit)
	}
	return snapshot.FormatFromPath(path)
}

package cmd

import (
	"fmt"

	"github.com/philipparndt/rtweekend/pkg/geometry"
	"github.com/philipparndt/rtweekend/pkg/render"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display the configuration and derived viewport",
	Long:  "Show the camera configuration, image size and the viewport basis vectors derived from them.",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	vp := render.NewViewport(cfg.Camera)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Camera")
	fmt.Fprintln(out, "======")
	fmt.Fprintf(out, "  Aspect Ratio: %s (%.6f)\n", cfg.Camera.AspectRatio, cfg.Camera.AspectRatio.Value())
	fmt.Fprintf(out, "  Viewport Height: %.6f\n", cfg.Camera.ViewportHeight)
	fmt.Fprintf(out, "  Focal Length: %.6f\n\n", cfg.Camera.FocalLength)

	fmt.Fprintln(out, "Viewport:")
	fmt.Fprintf(out, "  Origin: %s\n", formatVector(vp.Origin))
	fmt.Fprintf(out, "  Horizontal: %s\n", formatVector(vp.Horizontal))
	fmt.Fprintf(out, "  Vertical: %s\n", formatVector(vp.Vertical))
	fmt.Fprintf(out, "  Lower Left Corner: %s\n\n", formatVector(vp.LowerLeftCorner))

	fmt.Fprintln(out, "Image:")
	fmt.Fprintf(out, "  Size: %dx%d pixels\n", cfg.Image.Width, cfg.Image.Height)
	fmt.Fprintf(out, "  Source Orientation: %t\n", cfg.Image.SourceOrientation)
	fmt.Fprintf(out, "  Window Scale: %dx\n", cfg.Window.Scale)
	return nil
}

func formatVector(v geometry.Vec3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X(), v.Y(), v.Z())
}

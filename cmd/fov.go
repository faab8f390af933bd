package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/rozicdejan/keyence-iv-calculator/internal/debug"
	"github.com/rozicdejan/keyence-iv-calculator/internal/logic/optics"
)

func newFovCmd() *cobra.Command {
	var (
		model    string
		distance float64
	)

	cmd := &cobra.Command{
		Use:   "fov",
		Short: "Estimate field of view and resolution at a mounting distance",
		Example: `  # FOV and resolution of an IV3-G500CA mounted 150 mm from the target
  ivcalc fov --model IV3-G500CA --distance 150`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
				return fmt.Errorf("distance must be a non-negative finite number, got %g", distance)
			}

			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			p, err := cat.Lookup(model)
			if err != nil {
				return err
			}

			calc := optics.NewCalculator(p)
			clamped := calc.ClampDistance(distance)

			debug.Section("FOV estimate")
			debug.Value("Model", p.Model)
			debug.Value("Distance requested (mm)", distance)
			debug.Value("Distance clamped (mm)", clamped)
			debug.Verbose("distance range [%g, %g], FOV-X range [%g, %g], FOV-Y range [%g, %g]",
				p.MinDist, p.MaxDist, p.MinFovX, p.MaxFovX, p.MinFovY, p.MaxFovY)

			h, v := calc.ResolutionAtDistance(distance)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Camera: %s\n", p.Model)
			fmt.Fprintf(out, "Mounting distance: %.2f mm\n", clamped)
			fmt.Fprintf(out, "FOV horizontal (X): %.2f mm\n", calc.EstimatedFovX(distance))
			fmt.Fprintf(out, "FOV vertical   (Y): %.2f mm\n", calc.EstimatedFovY(distance))
			fmt.Fprintf(out, "Resolution H: %.4f mm/px (%.2f px/mm)\n", h.MmPerPx, h.PxPerMm)
			fmt.Fprintf(out, "Resolution V: %.4f mm/px (%.2f px/mm)\n", v.MmPerPx, v.PxPerMm)
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "camera model name")
	cmd.Flags().Float64Var(&distance, "distance", 0, "mounting distance in mm")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("distance")

	return cmd
}

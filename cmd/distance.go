package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/rozicdejan/keyence-iv-calculator/internal/debug"
	"github.com/rozicdejan/keyence-iv-calculator/internal/logic/optics"
	"github.com/rozicdejan/keyence-iv-calculator/internal/logic/target"
)

func newDistanceCmd() *cobra.Command {
	var (
		model   string
		axisArg string
		fov     float64
		coupled bool
	)

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Calculate the mounting distance for a target field of view",
		Long: `Calculates the mounting distance that yields the given target FOV on
one axis. With --coupled, the other axis is derived through the sensor
pixel aspect ratio and its own distance is reported as well.`,
		Example: `  # Distance for a 400 mm horizontal FOV
  ivcalc distance --model IV3-G500CA --axis x --fov 400

  # Same edit with the vertical axis coupled via the aspect ratio
  ivcalc distance --model IV3-G500CA --axis x --fov 400 --coupled`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if math.IsNaN(fov) || math.IsInf(fov, 0) || fov < 0 {
				return fmt.Errorf("fov must be a non-negative finite number, got %g", fov)
			}
			axis, err := target.ParseAxis(axisArg)
			if err != nil {
				return err
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
			out := cmd.OutOrStdout()

			debug.Section("Distance for target FOV")
			debug.Value("Model", p.Model)
			debug.Value("Axis", axis)
			debug.Value("Target FOV (mm)", fov)

			if !coupled {
				var dist float64
				switch axis {
				case target.AxisY:
					dist = calc.DistanceForFovY(fov)
				default:
					dist = calc.DistanceForFovX(fov)
				}
				fmt.Fprintf(out, "Camera: %s\n", p.Model)
				fmt.Fprintf(out, "Distance for %.2f mm %s FOV: %.2f mm\n", fov, axisName(axis), dist)
				return nil
			}

			state := target.ApplyEdit(p, target.NewState(p), axis, fov)
			debug.Verbose("coupled state: fov_x=%.2f fov_y=%.2f driving=%s",
				state.FovX, state.FovY, state.Driving)

			fmt.Fprintf(out, "Camera: %s\n", p.Model)
			fmt.Fprintf(out, "Target FOV (coupled): %.2f (H) × %.2f (V) mm\n", state.FovX, state.FovY)
			fmt.Fprintf(out, "Distance for %.2f mm horizontal FOV: %.2f mm\n", state.FovX, calc.DistanceForFovX(state.FovX))
			fmt.Fprintf(out, "Distance for %.2f mm vertical FOV:   %.2f mm\n", state.FovY, calc.DistanceForFovY(state.FovY))
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "camera model name")
	cmd.Flags().StringVar(&axisArg, "axis", "x", "FOV axis: x (horizontal) or y (vertical)")
	cmd.Flags().Float64Var(&fov, "fov", 0, "target field of view in mm")
	cmd.Flags().BoolVar(&coupled, "coupled", false, "derive the other axis via the sensor aspect ratio")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("fov")

	return cmd
}

func axisName(a target.Axis) string {
	if a == target.AxisY {
		return "vertical"
	}
	return "horizontal"
}

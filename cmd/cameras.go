package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCamerasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cameras [model]",
		Short: "List camera models or print one model's specifications",
		Example: `  # List all models in the catalog
  ivcalc cameras

  # Print the specification table of one model
  ivcalc cameras IV3-G500CA`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				for _, m := range cat.Models() {
					fmt.Fprintln(cmd.OutOrStdout(), m)
				}
				return nil
			}

			p, err := cat.Lookup(args[0])
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Model\t%s\n", p.Model)
			fmt.Fprintf(tw, "FOV range (H)\t%g – %g mm\n", p.MinFovX, p.MaxFovX)
			fmt.Fprintf(tw, "FOV range (V)\t%g – %g mm\n", p.MinFovY, p.MaxFovY)
			fmt.Fprintf(tw, "Mounting distance\t%g – %g mm\n", p.MinDist, p.MaxDist)
			fmt.Fprintf(tw, "Sensor\t%d (H) × %d (V) px\n", p.ResolutionH, p.ResolutionV)
			for _, s := range p.Specs {
				fmt.Fprintf(tw, "%s\t%s\n", s.Label, s.Value)
			}
			return tw.Flush()
		},
	}
}

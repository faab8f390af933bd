package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rozicdejan/keyence-iv-calculator/internal/catalog"
	"github.com/rozicdejan/keyence-iv-calculator/internal/debug"
)

var (
	catalogPath string
	debugLevel  int
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ivcalc",
		Short: "Field of view and resolution calculator for Keyence IV3 cameras",
		Long: `ivcalc converts between camera-to-target mounting distance and the
resulting optical field of view, and derives the pixel resolution
(mm/px and px/mm) of the sensor at that distance.

It ships with a built-in catalog of IV3 camera models and can serve a
small web interface for interactive use.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			debug.Init(debugLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a YAML camera catalog (default: built-in catalog)")
	cmd.PersistentFlags().IntVar(&debugLevel, "debug", 0, "debug level 0-2 (0=off, 1=info, 2=verbose)")

	cmd.AddCommand(newCamerasCmd())
	cmd.AddCommand(newFovCmd())
	cmd.AddCommand(newDistanceCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// loadCatalog resolves the catalog from --catalog, the IVCALC_CATALOG
// environment variable, or the built-in data, in that order.
func loadCatalog() (*catalog.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = os.Getenv("IVCALC_CATALOG")
	}
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		debug.Error(err)
		return nil, err
	}
	debug.Info("loaded catalog from %s (%d cameras)", path, cat.Len())
	return cat, nil
}

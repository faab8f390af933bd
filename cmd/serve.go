package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rozicdejan/keyence-iv-calculator/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port        string
		picturesDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the calculator web interface",
		Long: `Starts the calculator web interface on the specified port.

The interface lets you pick a camera model, convert between mounting
distance and field of view, and shows the resulting pixel resolution.
Camera pictures are served from the pictures directory when present.`,
		Example: `  # Start server on default port 8080
  ivcalc serve

  # Custom port and pictures directory
  ivcalc serve --port 3000 --pictures ./Pictures`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			// Flags win over environment; .env was loaded by the root command.
			if !cmd.Flags().Changed("port") {
				if env := os.Getenv("IVCALC_PORT"); env != "" {
					port = env
				}
			}
			if !cmd.Flags().Changed("pictures") {
				if env := os.Getenv("IVCALC_PICTURES"); env != "" {
					picturesDir = env
				}
			}

			addr := ":" + port
			slog.Info("calculator interface available",
				"addr", addr, "url", "http://localhost"+addr, "cameras", cat.Len())

			srv := web.NewServer(addr, cat, picturesDir)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&port, "port", "8080", "port for the web interface")
	cmd.Flags().StringVar(&picturesDir, "pictures", "Pictures", "directory with camera pictures")

	return cmd
}

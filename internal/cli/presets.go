package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletPack/internal/model"
	"github.com/piwi3910/PalletPack/internal/project"
)

// newPresetsCmd creates the presets command, which lists the pallet and
// container equipment available to --pallet and --container flags.
func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List pallet and container presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			catalog, path, err := project.LoadOrCreateCatalog()
			if err != nil {
				logger.Warn("could not load saved catalog, using built-in presets", "err", err)
				catalog = model.DefaultCatalog()
			} else {
				logger.Debug("catalog loaded", "path", path)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PALLET\tSIZE (cm)\tMAX HEIGHT\tMAX WEIGHT")
			for _, p := range catalog.Pallets {
				fmt.Fprintf(w, "%s\t%.0f x %.0f x %.1f\t%.0f cm\t%.0f kg\n",
					p.Name, p.Length, p.Width, p.Height, p.MaxStackHeight, p.MaxStackWeight)
			}
			fmt.Fprintln(w, "\nCONTAINER\tSIZE (cm)\tCAPACITY")
			for _, c := range catalog.Containers {
				fmt.Fprintf(w, "%s\t%.0f x %.0f x %.0f\t%.0f kg\n",
					c.Name, c.Length, c.Width, c.Height, c.WeightCapacity)
			}
			return w.Flush()
		},
	}
}

package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletPack/internal/engine"
	"github.com/piwi3910/PalletPack/internal/importer"
)

// importOpts holds the command-line flags for the import command.
type importOpts struct {
	pallet    string
	container string
}

// newImportCmd creates the import command. It reads a carton list from a
// CSV or Excel file, runs the optimizer for each carton against one
// pallet and container, and prints a per-carton summary table.
func newImportCmd() *cobra.Command {
	var opts importOpts

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a carton list (CSV or Excel) and optimize each carton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.pallet, "pallet", "", "pallet preset name (default: first catalog entry)")
	cmd.Flags().StringVar(&opts.container, "container", "", "container preset name (default: first catalog entry)")

	return cmd
}

func runImport(cmd *cobra.Command, path string, opts *importOpts) error {
	logger := loggerFromContext(cmd.Context())

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		result = importer.ImportExcel(path)
	default:
		result = importer.ImportCSV(path)
	}

	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	for _, e := range result.Errors {
		logger.Error(e)
	}
	if len(result.Cartons) == 0 {
		return fmt.Errorf("no valid cartons in %s", path)
	}
	logger.Info("cartons imported", "count", len(result.Cartons), "file", path)

	catalog := loadCatalog()
	plan := newConfiguredPlan(catalog)
	if opts.pallet != "" {
		preset := catalog.FindPalletByName(opts.pallet)
		if preset == nil {
			return fmt.Errorf("unknown pallet preset %q (see 'palletpack presets')", opts.pallet)
		}
		plan.Pallet = preset.ToPallet()
	}
	if opts.container != "" {
		preset := catalog.FindContainerByName(opts.container)
		if preset == nil {
			return fmt.Errorf("unknown container preset %q (see 'palletpack presets')", opts.container)
		}
		plan.Container = preset.ToContainer()
	}

	opt := engine.New(plan.Settings)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CARTON\tQTY\tPER PALLET\tPALLETS\tCONTAINERS\tREMAINING")
	for _, carton := range result.Cartons {
		report := opt.Optimize(carton, plan.Pallet, plan.Container)

		perPallet := 0
		if report.PalletLayout != nil {
			perPallet = report.PalletLayout.TotalCartons
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
			carton.Label, carton.Quantity, perPallet,
			report.Summary.PalletsUsed, report.Summary.ContainersUsed,
			report.Summary.RemainingCartons)
	}
	return w.Flush()
}

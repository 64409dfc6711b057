package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletPack/internal/engine"
	"github.com/piwi3910/PalletPack/internal/model"
	"github.com/piwi3910/PalletPack/internal/project"
	"github.com/piwi3910/PalletPack/internal/validate"
)

// compareOpts holds the command-line flags for the compare command.
type compareOpts struct {
	planPath string

	cartonLabel string
	length      string
	width       string
	height      string
	weight      string
	quantity    string
}

// newCompareCmd creates the compare command. It runs the optimizer over a
// set of what-if scenarios (rotation toggled, load-bearing toggled, each
// alternative pallet preset) and prints the results side by side.
func newCompareCmd() *cobra.Command {
	var opts compareOpts

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare load plans across what-if scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.planPath, "plan", "", "load inputs from a saved plan file")
	cmd.Flags().StringVar(&opts.cartonLabel, "label", "Carton", "carton label")
	cmd.Flags().StringVarP(&opts.length, "length", "l", "", "carton length in cm")
	cmd.Flags().StringVarP(&opts.width, "width", "w", "", "carton width in cm")
	cmd.Flags().StringVar(&opts.height, "height", "", "carton height in cm")
	cmd.Flags().StringVar(&opts.weight, "weight", "", "carton weight in kg")
	cmd.Flags().StringVarP(&opts.quantity, "quantity", "q", "", "number of cartons to ship")

	return cmd
}

func runCompare(cmd *cobra.Command, opts *compareOpts) error {
	logger := loggerFromContext(cmd.Context())

	plan, err := comparePlan(opts)
	if err != nil {
		return err
	}

	scenarios := engine.BuildDefaultScenarios(plan)
	logger.Info("comparing scenarios", "count", len(scenarios), "carton", plan.Carton.Label)

	results := engine.CompareScenarios(scenarios, plan.Carton)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tPLACED\tREMAINING\tPALLETS\tEFFICIENCY\tSPACE")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f%%\t%.1f%%\n",
			r.Scenario.Name, r.CartonsPlaced, r.RemainingCartons, r.PalletsUsed,
			r.EfficiencyPct, r.SpaceUtilPct)
	}
	return w.Flush()
}

// comparePlan builds the comparison baseline from a plan file or flags.
func comparePlan(opts *compareOpts) (model.Plan, error) {
	if opts.planPath != "" {
		return project.LoadPlan(opts.planPath)
	}

	record := map[string]string{
		"length":   opts.length,
		"width":    opts.width,
		"height":   opts.height,
		"weight":   opts.weight,
		"quantity": opts.quantity,
	}
	if ok, problems := validate.All(validate.CategoryCarton, record); !ok {
		return model.Plan{}, validationError(problems)
	}

	plan := newConfiguredPlan(loadCatalog())
	plan.Carton = model.NewCarton(
		opts.cartonLabel,
		validate.Number(opts.length),
		validate.Number(opts.width),
		validate.Number(opts.height),
		validate.Number(opts.weight),
		int(validate.Number(opts.quantity)),
	)
	return plan, nil
}

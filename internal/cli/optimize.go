package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletPack/internal/engine"
	"github.com/piwi3910/PalletPack/internal/export"
	"github.com/piwi3910/PalletPack/internal/model"
	"github.com/piwi3910/PalletPack/internal/project"
	"github.com/piwi3910/PalletPack/internal/validate"
)

// optimizeOpts holds the command-line flags for the optimize command.
type optimizeOpts struct {
	planPath string // load carton/equipment/settings from a saved plan

	cartonLabel string
	length      string // carton dimensions arrive as strings so they pass
	width       string // through the same validation gate as UI input
	height      string
	weight      string
	quantity    string

	pallet    string // pallet preset name from the catalog
	container string // container preset name from the catalog

	noRotation        bool
	ignoreLoadBearing bool

	pdfPath    string
	excelPath  string
	labelsPath string
	dxfPath    string
	saveName   string
}

// newOptimizeCmd creates the optimize command, the core of the CLI. It
// computes a full load plan from either a saved plan file or carton flags
// plus catalog preset names, and optionally writes export files.
func newOptimizeCmd() *cobra.Command {
	var opts optimizeOpts

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Compute a pallet and container load plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.planPath, "plan", "", "load inputs from a saved plan file")
	cmd.Flags().StringVar(&opts.cartonLabel, "label", "Carton", "carton label")
	cmd.Flags().StringVarP(&opts.length, "length", "l", "", "carton length in cm")
	cmd.Flags().StringVarP(&opts.width, "width", "w", "", "carton width in cm")
	cmd.Flags().StringVar(&opts.height, "height", "", "carton height in cm")
	cmd.Flags().StringVar(&opts.weight, "weight", "", "carton weight in kg")
	cmd.Flags().StringVarP(&opts.quantity, "quantity", "q", "", "number of cartons to ship")
	cmd.Flags().StringVar(&opts.pallet, "pallet", "", "pallet preset name (default: first catalog entry)")
	cmd.Flags().StringVar(&opts.container, "container", "", "container preset name (default: first catalog entry)")
	cmd.Flags().BoolVar(&opts.noRotation, "no-rotation", false, "disable the 90-degree carton orientation")
	cmd.Flags().BoolVar(&opts.ignoreLoadBearing, "ignore-load-bearing", false, "stack to the height limit, ignoring the pallet weight limit")
	cmd.Flags().StringVar(&opts.pdfPath, "pdf", "", "write a load plan PDF to this path")
	cmd.Flags().StringVar(&opts.excelPath, "excel", "", "write a packing list workbook to this path")
	cmd.Flags().StringVar(&opts.labelsPath, "labels", "", "write QR pallet labels PDF to this path")
	cmd.Flags().StringVar(&opts.dxfPath, "dxf", "", "write a layer footprint DXF to this path")
	cmd.Flags().StringVar(&opts.saveName, "save", "", "save the inputs and result as a named plan")

	return cmd
}

func runOptimize(cmd *cobra.Command, opts *optimizeOpts) error {
	logger := loggerFromContext(cmd.Context())

	plan, err := buildPlan(opts)
	if err != nil {
		return err
	}

	logger.Info("optimizing",
		"carton", plan.Carton.Label,
		"quantity", plan.Carton.Quantity,
		"pallet", plan.Pallet.Label,
		"container", plan.Container.Label,
	)

	opt := engine.NewWithTracer(plan.Settings, logTracer{logger: logger})
	report := opt.Optimize(plan.Carton, plan.Pallet, plan.Container)
	plan.Report = &report

	printReport(cmd, report)

	if report.PalletLayout == nil {
		logger.Warn("carton does not fit on the pallet under the current limits")
	}

	if err := writeExports(logger, opts, report); err != nil {
		return err
	}

	if opts.saveName != "" {
		plan.Name = opts.saveName
		path := project.PlanPath(opts.saveName)
		if err := project.SavePlan(path, plan); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}
		logger.Info("plan saved", "path", path)

		config, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			config = model.DefaultAppConfig()
		}
		project.AddRecentPlan(&config, path)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
			logger.Warn("could not update recent plans", "err", err)
		}
	}

	return nil
}

// buildPlan assembles the optimization inputs from a plan file or from
// validated flag values plus catalog presets.
func buildPlan(opts *optimizeOpts) (model.Plan, error) {
	if opts.planPath != "" {
		plan, err := project.LoadPlan(opts.planPath)
		if err != nil {
			return model.Plan{}, err
		}
		applySettingFlags(&plan, opts)
		return plan, nil
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

	catalog := loadCatalog()
	plan := newConfiguredPlan(catalog)
	plan.Carton = model.NewCarton(
		opts.cartonLabel,
		validate.Number(opts.length),
		validate.Number(opts.width),
		validate.Number(opts.height),
		validate.Number(opts.weight),
		int(validate.Number(opts.quantity)),
	)

	if opts.pallet != "" {
		preset := catalog.FindPalletByName(opts.pallet)
		if preset == nil {
			return model.Plan{}, fmt.Errorf("unknown pallet preset %q (see 'palletpack presets')", opts.pallet)
		}
		plan.Pallet = preset.ToPallet()
	}
	if opts.container != "" {
		preset := catalog.FindContainerByName(opts.container)
		if preset == nil {
			return model.Plan{}, fmt.Errorf("unknown container preset %q (see 'palletpack presets')", opts.container)
		}
		plan.Container = preset.ToContainer()
	}

	applySettingFlags(&plan, opts)
	return plan, nil
}

// loadCatalog returns the saved equipment catalog. Persistence failures
// must not block a pure computation; they fall back to the built-in
// catalog.
func loadCatalog() model.Catalog {
	catalog, _, err := project.LoadOrCreateCatalog()
	if err != nil {
		return model.DefaultCatalog()
	}
	return catalog
}

// newConfiguredPlan builds a fresh plan seeded with the saved
// application defaults: optimizer switches plus the default equipment
// preset names, resolved against the catalog. This is the single point
// where configured defaults enter a run; explicit flags override them
// afterwards.
func newConfiguredPlan(catalog model.Catalog) model.Plan {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}

	plan := model.NewPlan()
	config.ApplyToSettings(&plan.Settings)
	if preset := catalog.FindPalletByName(config.DefaultPallet); preset != nil {
		plan.Pallet = preset.ToPallet()
	}
	if preset := catalog.FindContainerByName(config.DefaultContainer); preset != nil {
		plan.Container = preset.ToContainer()
	}
	return plan
}

// validationError folds per-field validation messages into one error
// with the fields in stable order.
func validationError(problems map[string]string) error {
	fields := make([]string, 0, len(problems))
	for f := range problems {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, problems[f])
	}
	return fmt.Errorf("invalid carton input:\n  %s", strings.Join(msgs, "\n  "))
}

func applySettingFlags(plan *model.Plan, opts *optimizeOpts) {
	if opts.noRotation {
		plan.Settings.EnableRotation = false
	}
	if opts.ignoreLoadBearing {
		plan.Settings.ConsiderLoadBearing = false
	}
}

// printReport writes the human-readable result summary to stdout.
func printReport(cmd *cobra.Command, report model.OptimizationReport) {
	out := cmd.OutOrStdout()
	s := report.Summary

	fmt.Fprintf(out, "Carton:      %s (%.0f x %.0f x %.0f cm, %.1f kg)\n",
		report.Carton.Label, report.Carton.Length, report.Carton.Width, report.Carton.Height, report.Carton.Weight)
	fmt.Fprintf(out, "Pallet:      %s\n", report.Pallet.Label)
	fmt.Fprintf(out, "Container:   %s\n\n", report.Container.Label)

	if layout := report.PalletLayout; layout != nil {
		orientation := string(layout.Orientation.Tag)
		if layout.Kind == model.LayoutMixedRows {
			orientation = fmt.Sprintf("mixed (%d + %d rows)", layout.PlainRows, layout.SwappedRows)
		}
		fmt.Fprintf(out, "Layer:       %d cartons, %s\n", layout.CartonsPerLayer, orientation)
		fmt.Fprintf(out, "Stack:       %d layers, %d cartons per pallet\n", layout.MaxLayers, layout.TotalCartons)
	}

	fmt.Fprintf(out, "Pallets:     %d used, %d fit per container\n", s.PalletsUsed, report.ContainerLayout.TotalPallets)
	fmt.Fprintf(out, "Containers:  %d\n", s.ContainersUsed)
	fmt.Fprintf(out, "Placed:      %d of %d cartons (%d remaining)\n", s.CartonsPlaced, s.CartonsRequested, s.RemainingCartons)
	fmt.Fprintf(out, "Efficiency:  %.1f%% layer coverage, %.1f%% container space, %.1f%% weight\n",
		s.EfficiencyPercent(), s.SpaceUtilizationPercent(), s.WeightUtilization*100)
}

// writeExports writes every requested export file.
func writeExports(logger *log.Logger, opts *optimizeOpts, report model.OptimizationReport) error {
	exports := []struct {
		path string
		kind string
		fn   func(string, model.OptimizationReport) error
	}{
		{opts.pdfPath, "pdf", export.ExportPDF},
		{opts.excelPath, "excel", export.ExportExcel},
		{opts.labelsPath, "labels", export.ExportLabels},
		{opts.dxfPath, "dxf", export.ExportDXF},
	}

	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.fn(e.path, report); err != nil {
			return fmt.Errorf("%s export failed: %w", e.kind, err)
		}
		logger.Info("export written", "format", e.kind, "path", e.path)
	}
	return nil
}

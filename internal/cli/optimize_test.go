package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/piwi3910/PalletPack/internal/engine"
	"github.com/piwi3910/PalletPack/internal/model"
	"github.com/piwi3910/PalletPack/internal/project"
	"github.com/spf13/cobra"
)

func mustOptimize(plan model.Plan) model.OptimizationReport {
	return engine.New(plan.Settings).Optimize(plan.Carton, plan.Pallet, plan.Container)
}

func testOptimizeOpts() *optimizeOpts {
	return &optimizeOpts{
		cartonLabel: "Shoe Box",
		length:      "30",
		width:       "20",
		height:      "25",
		weight:      "5",
		quantity:    "200",
	}
}

func TestBuildPlan_FromFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	plan, err := buildPlan(testOptimizeOpts())
	if err != nil {
		t.Fatalf("buildPlan failed: %v", err)
	}

	if plan.Carton.Label != "Shoe Box" {
		t.Errorf("carton label = %q, want %q", plan.Carton.Label, "Shoe Box")
	}
	if plan.Carton.Length != 30 || plan.Carton.Quantity != 200 {
		t.Errorf("carton not built from flags: %+v", plan.Carton)
	}
	// Default equipment from the catalog
	if plan.Pallet.Length != 120 || plan.Pallet.Width != 80 {
		t.Errorf("expected default EUR-1 pallet, got %+v", plan.Pallet)
	}
}

func TestBuildPlan_RejectsInvalidInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := testOptimizeOpts()
	opts.length = "600" // above the 500 cm carton bound

	if _, err := buildPlan(opts); err == nil {
		t.Fatal("expected validation error for out-of-range length")
	}
}

func TestBuildPlan_RejectsMissingFields(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := testOptimizeOpts()
	opts.weight = ""

	_, err := buildPlan(opts)
	if err == nil {
		t.Fatal("expected validation error for missing weight")
	}
	if !strings.Contains(err.Error(), "weight") {
		t.Errorf("error does not name the failing field: %v", err)
	}
}

func TestBuildPlan_ResolvesPresets(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := testOptimizeOpts()
	opts.pallet = "GMA (122x102)"
	opts.container = "20ft Standard"

	plan, err := buildPlan(opts)
	if err != nil {
		t.Fatalf("buildPlan failed: %v", err)
	}
	if plan.Pallet.Length != 122 || plan.Pallet.Width != 102 {
		t.Errorf("pallet preset not resolved: %+v", plan.Pallet)
	}
	if plan.Container.Length != 589 {
		t.Errorf("container preset not resolved: %+v", plan.Container)
	}
}

func TestBuildPlan_UnknownPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := testOptimizeOpts()
	opts.pallet = "No Such Pallet"

	if _, err := buildPlan(opts); err == nil {
		t.Fatal("expected error for unknown pallet preset")
	}
}

func TestBuildPlan_AppliesConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config := model.DefaultAppConfig()
	config.DefaultEnableRotation = false
	config.DefaultPallet = "GMA (122x102)"
	config.DefaultContainer = "20ft Standard"
	if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	plan, err := buildPlan(testOptimizeOpts())
	if err != nil {
		t.Fatalf("buildPlan failed: %v", err)
	}

	if plan.Settings.EnableRotation {
		t.Error("expected saved default to disable rotation")
	}
	if plan.Pallet.Length != 122 || plan.Pallet.Width != 102 {
		t.Errorf("default pallet preset not applied: %+v", plan.Pallet)
	}
	if plan.Container.Length != 589 {
		t.Errorf("default container preset not applied: %+v", plan.Container)
	}
}

func TestBuildPlan_FlagsOverrideConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config := model.DefaultAppConfig()
	config.DefaultPallet = "GMA (122x102)"
	if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	opts := testOptimizeOpts()
	opts.pallet = "Half EUR (80x60)"

	plan, err := buildPlan(opts)
	if err != nil {
		t.Fatalf("buildPlan failed: %v", err)
	}
	if plan.Pallet.Length != 80 || plan.Pallet.Width != 60 {
		t.Errorf("explicit flag should win over the saved default: %+v", plan.Pallet)
	}
}

func TestRunOptimize_SaveRecordsRecentPlan(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := testOptimizeOpts()
	opts.saveName = "shoe shipment"

	cmd := newOptimizeCmd()
	var sb strings.Builder
	cmd.SetOut(&sb)
	cmd.SetContext(context.Background())

	if err := runOptimize(cmd, opts); err != nil {
		t.Fatalf("runOptimize failed: %v", err)
	}

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	want := project.PlanPath(opts.saveName)
	if len(config.RecentPlans) == 0 || config.RecentPlans[0] != want {
		t.Errorf("RecentPlans = %v, want first entry %q", config.RecentPlans, want)
	}
}

func TestBuildPlan_StableValidationOrder(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := testOptimizeOpts()
	opts.length = ""
	opts.weight = ""

	for i := 0; i < 20; i++ {
		_, err := buildPlan(opts)
		if err == nil {
			t.Fatal("expected validation error for missing fields")
		}
		msg := err.Error()
		li := strings.Index(msg, "length")
		wi := strings.Index(msg, "weight")
		if li < 0 || wi < 0 {
			t.Fatalf("error does not name both failing fields: %v", err)
		}
		if li > wi {
			t.Fatalf("fields reported out of order: %v", err)
		}
	}
}

func TestApplySettingFlags(t *testing.T) {
	plan := model.NewPlan()
	applySettingFlags(&plan, &optimizeOpts{noRotation: true, ignoreLoadBearing: true})

	if plan.Settings.EnableRotation {
		t.Error("expected rotation disabled")
	}
	if plan.Settings.ConsiderLoadBearing {
		t.Error("expected load bearing ignored")
	}
}

func TestPrintReport_MentionsHeadlineNumbers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	plan, err := buildPlan(testOptimizeOpts())
	if err != nil {
		t.Fatalf("buildPlan failed: %v", err)
	}

	var sb strings.Builder
	cmd := &cobra.Command{}
	cmd.SetOut(&sb)

	report := mustOptimize(plan)
	printReport(cmd, report)

	out := sb.String()
	for _, want := range []string{"Shoe Box", "Pallets:", "Containers:", "Placed:"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}

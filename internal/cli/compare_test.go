package cli

import (
	"context"
	"strings"
	"testing"
)

func TestRunCompare_PrintsScenarioTable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := &compareOpts{
		cartonLabel: "Shoe Box",
		length:      "30",
		width:       "20",
		height:      "25",
		weight:      "5",
		quantity:    "200",
	}

	cmd := newCompareCmd()
	var sb strings.Builder
	cmd.SetOut(&sb)
	cmd.SetContext(context.Background())

	if err := runCompare(cmd, opts); err != nil {
		t.Fatalf("runCompare failed: %v", err)
	}

	out := sb.String()
	for _, want := range []string{"SCENARIO", "Current Settings", "Rotation Off", "Ignore Stack Weight"} {
		if !strings.Contains(out, want) {
			t.Errorf("compare output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCompare_RejectsInvalidInput(t *testing.T) {
	opts := &compareOpts{
		length: "30", width: "20", height: "25", weight: "5", quantity: "0",
	}

	cmd := newCompareCmd()
	cmd.SetContext(context.Background())

	if err := runCompare(cmd, opts); err == nil {
		t.Fatal("expected validation error for zero quantity")
	}
}

func TestComparePlan_StableValidationOrder(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := &compareOpts{
		length: "", width: "20", height: "", weight: "5", quantity: "200",
	}

	for i := 0; i < 20; i++ {
		_, err := comparePlan(opts)
		if err == nil {
			t.Fatal("expected validation error for missing fields")
		}
		msg := err.Error()
		hi := strings.Index(msg, "height")
		li := strings.Index(msg, "length")
		if hi < 0 || li < 0 {
			t.Fatalf("error does not name both failing fields: %v", err)
		}
		if hi > li {
			t.Fatalf("fields reported out of order: %v", err)
		}
	}
}

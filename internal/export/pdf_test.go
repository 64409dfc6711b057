package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PalletPack/internal/engine"
	"github.com/piwi3910/PalletPack/internal/model"
)

// buildTestReport creates a realistic optimization report for testing.
func buildTestReport() model.OptimizationReport {
	carton := model.Carton{
		ID: "c1", Label: "Shoe Box", Length: 30, Width: 20, Height: 25,
		Weight: 5, Quantity: 200,
	}
	pallet := model.Pallet{
		Label: "EUR-1", Length: 120, Width: 80, Height: 14.5,
		MaxStackHeight: 200, MaxStackWeight: 1000,
	}
	container := model.Container{
		Label: "40ft", Length: 1203, Width: 235, Height: 239,
		WeightCapacity: 26680,
	}
	return engine.New(model.DefaultSettings()).Optimize(carton, pallet, container)
}

// rebuildReport re-runs the optimizer with modified inputs under default
// settings.
func rebuildReport(carton model.Carton, pallet model.Pallet, container model.Container) model.OptimizationReport {
	return engine.New(model.DefaultSettings()).Optimize(carton, pallet, container)
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "load_plan.pdf")

	report := buildTestReport()
	if err := ExportPDF(path, report); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with 3 pages should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_NoLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	report := buildTestReport()
	report.PalletLayout = nil

	if err := ExportPDF(path, report); err == nil {
		t.Fatal("expected error for report without layout, got nil")
	}
}

func TestExportPDF_MixedRowLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixed.pdf")

	// 40x30 cartons on a 120x100 pallet produce a mixed-row layer with
	// both orientations on the first layer.
	carton := model.Carton{
		ID: "c1", Label: "Carton", Length: 40, Width: 30, Height: 25,
		Weight: 5, Quantity: 100,
	}
	pallet := model.Pallet{
		Label: "Custom 120x100", Length: 120, Width: 100, Height: 14.5,
		MaxStackHeight: 200, MaxStackWeight: 1500,
	}
	container := model.Container{
		Label: "40ft", Length: 1203, Width: 235, Height: 239,
		WeightCapacity: 26680,
	}
	report := engine.New(model.DefaultSettings()).Optimize(carton, pallet, container)
	if report.PalletLayout == nil || report.PalletLayout.Kind != model.LayoutMixedRows {
		t.Fatalf("fixture did not produce a mixed-row layout: %+v", report.PalletLayout)
	}

	if err := ExportPDF(path, report); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestFitDrawing_PreservesAspect(t *testing.T) {
	scale, _, _, canvasW, canvasH := fitDrawing(120, 80)
	if scale <= 0 {
		t.Fatalf("scale = %v, want > 0", scale)
	}
	gotRatio := canvasW / canvasH
	wantRatio := 120.0 / 80.0
	if diff := gotRatio - wantRatio; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("aspect ratio = %v, want %v", gotRatio, wantRatio)
	}
}

func TestCartonExtents(t *testing.T) {
	c := model.Carton{Length: 30, Width: 20}

	x, y := cartonExtents(c, model.RotationNone)
	if x != 30 || y != 20 {
		t.Errorf("as-given extents = (%v, %v), want (30, 20)", x, y)
	}

	x, y = cartonExtents(c, model.RotationSwapped)
	if x != 20 || y != 30 {
		t.Errorf("swapped extents = (%v, %v), want (20, 30)", x, y)
	}
}

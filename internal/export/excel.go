package export

import (
	"fmt"

	"github.com/piwi3910/PalletPack/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportExcel writes a packing list workbook with a summary sheet, a
// per-pallet sheet, and the raw carton placement table for one pallet.
func ExportExcel(path string, report model.OptimizationReport) error {
	if report.PalletLayout == nil {
		return fmt.Errorf("no pallet layout to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, report); err != nil {
		return err
	}
	if err := writePalletSheet(f, report); err != nil {
		return err
	}
	if err := writePlacementSheet(f, report); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeSummarySheet(f *excelize.File, report model.OptimizationReport) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	s := report.Summary
	rows := []struct {
		label string
		value interface{}
	}{
		{"Carton", report.Carton.Label},
		{"Pallet", report.Pallet.Label},
		{"Container", report.Container.Label},
		{"Cartons Requested", s.CartonsRequested},
		{"Cartons Placed", s.CartonsPlaced},
		{"Remaining Cartons", s.RemainingCartons},
		{"Pallets Used", s.PalletsUsed},
		{"Containers Used", s.ContainersUsed},
		{"Packing Efficiency %", s.EfficiencyPercent()},
		{"Space Utilization %", s.SpaceUtilizationPercent()},
		{"Weight Utilization %", s.WeightUtilization * 100},
	}

	for i, row := range rows {
		labelCell := fmt.Sprintf("A%d", i+1)
		valueCell := fmt.Sprintf("B%d", i+1)
		if err := f.SetCellValue(sheet, labelCell, row.label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, valueCell, row.value); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, labelCell, labelCell, bold); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "A", 24)
}

func writePalletSheet(f *excelize.File, report model.OptimizationReport) error {
	const sheet = "Pallets"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Pallet #", "Cartons", "Layers", "Stack Height (cm)", "Load Weight (kg)", "Container Layer"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	layout := report.PalletLayout
	carton := report.Carton

	for i := 0; i < report.Summary.PalletsUsed; i++ {
		containerLayer := 0
		if i < len(report.ContainerLayout.Placements) {
			containerLayer = report.ContainerLayout.Placements[i].Layer + 1
		}

		// The last pallet carries the remainder of the demand.
		cartons := CartonsOnPallet(report, i)
		layers := layout.MaxLayers
		if layout.CartonsPerLayer > 0 {
			layers = (cartons + layout.CartonsPerLayer - 1) / layout.CartonsPerLayer
		}
		stackHeight := report.Pallet.Height + float64(layers)*carton.Height
		loadWeight := float64(cartons) * carton.Weight

		values := []interface{}{i + 1, cartons, layers, stackHeight, loadWeight, containerLayer}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(sheet, "A", "F", 18)
}

func writePlacementSheet(f *excelize.File, report model.OptimizationReport) error {
	const sheet = "Layer Placements"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Layer", "Row", "Col", "X (cm)", "Y (cm)", "Z (cm)", "Orientation"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, p := range report.PalletLayout.Placements {
		values := []interface{}{p.Layer + 1, p.Row + 1, p.Col + 1, p.X, p.Y, p.Z, string(p.Rotation)}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(sheet, "A", "G", 12)
}

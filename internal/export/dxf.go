package export

import (
	"fmt"

	"github.com/piwi3910/PalletPack/internal/model"
	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// ExportDXF writes a 2D footprint drawing of the best pallet layer as a
// DXF file, usable in CAD tools for warehouse planning. The pallet deck
// outline and the carton footprints go on separate layers; rotated
// cartons get their own layer so they can be styled independently.
func ExportDXF(path string, report model.OptimizationReport) error {
	layout := report.PalletLayout
	if layout == nil {
		return fmt.Errorf("no pallet layout to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("PALLET", dxfcolor.Yellow, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add pallet layer: %w", err)
	}
	drawRect(d, 0, 0, report.Pallet.Length, report.Pallet.Width)

	if _, err := d.AddLayer("CARTONS", dxfcolor.Green, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add carton layer: %w", err)
	}
	rotatedLayerAdded := false

	for _, p := range layout.Placements {
		if p.Layer != 0 {
			continue
		}
		if p.Rotation == model.RotationSwapped {
			if !rotatedLayerAdded {
				if _, err := d.AddLayer("CARTONS_ROTATED", dxfcolor.Cyan, dxf.DefaultLineType, false); err != nil {
					return fmt.Errorf("failed to add rotated carton layer: %w", err)
				}
				rotatedLayerAdded = true
			}
			if err := d.ChangeLayer("CARTONS_ROTATED"); err != nil {
				return err
			}
		} else {
			if err := d.ChangeLayer("CARTONS"); err != nil {
				return err
			}
		}

		w, h := cartonExtents(report.Carton, p.Rotation)
		drawRect(d, p.X, p.Y, w, h)
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle as four line entities on the
// current layer.
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}

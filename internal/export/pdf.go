// Package export provides functionality for exporting load optimization
// reports to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PalletPack/internal/model"
)

// rgb represents a fill color for a drawn carton or pallet.
type rgb struct {
	R, G, B int
}

var (
	plainColor   = rgb{R: 76, G: 175, B: 80}   // green, as-given cartons
	swappedColor = rgb{R: 33, G: 150, B: 243}  // blue, rotated cartons
	palletColor  = rgb{R: 255, G: 152, B: 0}   // orange, pallets in the container plan
	deckColor    = rgb{R: 210, G: 180, B: 140} // wood
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF load plan: a top view of one pallet layer, a
// top view of the container floor, and a summary page.
func ExportPDF(path string, report model.OptimizationReport) error {
	if report.PalletLayout == nil {
		return fmt.Errorf("no pallet layout to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayerPage(pdf, report)

	pdf.AddPage()
	renderContainerPage(pdf, report)

	pdf.AddPage()
	renderSummaryPage(pdf, report)

	return pdf.OutputFileAndClose(path)
}

// renderLayerPage draws the top view of one pallet layer.
func renderLayerPage(pdf *fpdf.Fpdf, report model.OptimizationReport) {
	layout := report.PalletLayout
	pallet := report.Pallet

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Pallet Layer: %s (%.0f x %.0f cm)", pallet.Label, pallet.Length, pallet.Width)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Cartons per layer: %d | Layers: %d | Per pallet: %d | Layer coverage: %.1f%%",
		layout.CartonsPerLayer, layout.MaxLayers, layout.TotalCartons, layout.Efficiency*100)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	scale, offsetX, offsetY, canvasW, canvasH := fitDrawing(pallet.Length, pallet.Width)

	// Pallet deck background
	pdf.SetFillColor(deckColor.R, deckColor.G, deckColor.B)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// First-layer cartons, colored by rotation
	for _, p := range layout.Placements {
		if p.Layer != 0 {
			continue
		}
		extentX, extentY := cartonExtents(report.Carton, p.Rotation)
		col := plainColor
		if p.Rotation == model.RotationSwapped {
			col = swappedColor
		}

		cw := extentX * scale
		ch := extentY * scale
		cx := offsetX + p.X*scale
		cy := offsetY + p.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(cx, cy, cw, ch, "FD")

		if cw > 12 && ch > 6 {
			pdf.SetFont("Helvetica", "", 6)
			pdf.SetTextColor(0, 0, 0)
			label := string(p.Rotation)
			labelW := pdf.GetStringWidth(label)
			pdf.SetXY(cx+(cw-labelW)/2, cy+ch/2-2)
			pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
		}
	}

	drawDimensionAnnotations(pdf, pallet.Length, pallet.Width, scale, offsetX, offsetY, canvasW, canvasH)
}

// renderContainerPage draws the top view of the container floor with the
// used pallet positions.
func renderContainerPage(pdf *fpdf.Fpdf, report model.OptimizationReport) {
	container := report.Container
	pallet := report.Pallet

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Container Plan: %s (%.0f x %.0f x %.0f cm)",
		container.Label, container.Length, container.Width, container.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	cl := report.ContainerLayout
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pallets per layer: %d | Pallet layers: %d | Capacity: %d | Stack height: %.1f cm",
		cl.PalletsPerLayer, cl.MaxPalletLayers, cl.TotalPallets, cl.StackHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	scale, offsetX, offsetY, canvasW, canvasH := fitDrawing(container.Length, container.Width)

	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Pallet positions are container-center relative; shift to the
	// drawing origin at the container corner.
	for _, p := range cl.Placements {
		if p.Layer != 0 {
			continue
		}
		px := offsetX + (p.X+container.Length/2-pallet.Length/2)*scale
		py := offsetY + (p.Y+container.Width/2-pallet.Width/2)*scale
		pw := pallet.Length * scale
		ph := pallet.Width * scale

		pdf.SetFillColor(palletColor.R, palletColor.G, palletColor.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetTextColor(0, 0, 0)
		label := fmt.Sprintf("%d", p.Sequence+1)
		labelW := pdf.GetStringWidth(label)
		pdf.SetXY(px+(pw-labelW)/2, py+ph/2-2)
		pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
	}

	drawDimensionAnnotations(pdf, container.Length, container.Width, scale, offsetX, offsetY, canvasW, canvasH)
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, report model.OptimizationReport) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Load Optimization Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	s := report.Summary

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	items := []struct {
		label string
		value string
	}{
		{"Cartons Requested", fmt.Sprintf("%d", s.CartonsRequested)},
		{"Cartons Placed", fmt.Sprintf("%d", s.CartonsPlaced)},
		{"Remaining Cartons", fmt.Sprintf("%d", s.RemainingCartons)},
		{"Pallets Used", fmt.Sprintf("%d", s.PalletsUsed)},
		{"Containers Used", fmt.Sprintf("%d", s.ContainersUsed)},
		{"Packing Efficiency", fmt.Sprintf("%.1f%%", s.EfficiencyPercent())},
		{"Space Utilization", fmt.Sprintf("%.1f%%", s.SpaceUtilizationPercent())},
		{"Weight Utilization", fmt.Sprintf("%.1f%%", s.WeightUtilization*100)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Input Echo", "", 0, "L", false, 0, "")
	y += 9

	echo := []struct {
		label string
		value string
	}{
		{"Carton", fmt.Sprintf("%s %.0f x %.0f x %.0f cm, %.1f kg",
			report.Carton.Label, report.Carton.Length, report.Carton.Width, report.Carton.Height, report.Carton.Weight)},
		{"Pallet", fmt.Sprintf("%s %.0f x %.0f x %.1f cm, stack to %.0f cm / %.0f kg",
			report.Pallet.Label, report.Pallet.Length, report.Pallet.Width, report.Pallet.Height,
			report.Pallet.MaxStackHeight, report.Pallet.MaxStackWeight)},
		{"Container", fmt.Sprintf("%s %.0f x %.0f x %.0f cm, %.0f kg",
			report.Container.Label, report.Container.Length, report.Container.Width, report.Container.Height,
			report.Container.WeightCapacity)},
		{"Rotation", onOff(report.Settings.EnableRotation)},
		{"Load Bearing", onOff(report.Settings.ConsiderLoadBearing)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range echo {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(30, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(150, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by PalletPack - Pallet & Container Load Optimizer", "", 0, "C", false, 0, "")
}

// fitDrawing computes the scale and offsets to center a w x h cm area in
// the page drawing region.
func fitDrawing(w, h float64) (scale, offsetX, offsetY, canvasW, canvasH float64) {
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 10

	scale = math.Min(drawWidth/w, drawHeight/h)
	canvasW = w * scale
	canvasH = h * scale
	offsetX = marginLeft + (drawWidth-canvasW)/2
	offsetY = drawAreaTop
	return scale, offsetX, offsetY, canvasW, canvasH
}

// drawDimensionAnnotations adds length and width labels outside the rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, length, width, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	lengthLabel := fmt.Sprintf("%.0f cm", length)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX+(canvasW-lLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")

	widthLabel := fmt.Sprintf("%.0f cm", width)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX-3-wLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// cartonExtents returns the footprint extents of a placed carton along
// the pallet length and width axes.
func cartonExtents(c model.Carton, rotation model.RotationTag) (x, y float64) {
	if rotation == model.RotationSwapped {
		return c.Width, c.Length
	}
	return c.Length, c.Width
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

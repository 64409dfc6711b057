package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PalletPack/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each pallet label's QR code.
type LabelInfo struct {
	PalletSeq   int     `json:"pallet"`
	PalletLabel string  `json:"pallet_label"`
	CartonLabel string  `json:"carton_label"`
	Cartons     int     `json:"cartons"`
	Layers      int     `json:"layers"`
	StackHeight float64 `json:"stack_height_cm"`
	LoadWeight  float64 `json:"load_weight_kg"`
	Container   string  `json:"container"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageMarginTop  = 12.7 // mm
	labelPageMarginLeft = 4.8  // mm
	labelWidth          = 66.7 // mm per label
	labelHeight         = 25.4 // mm per label
	labelCols           = 3
	labelRows           = 10
	labelsPerPage       = labelCols * labelRows
	qrSize              = 20.0 // QR code size in mm
	labelPadding        = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per used pallet.
// Each label carries the pallet sequence, carton counts, and a QR code
// encoding the pallet metadata as JSON. Labels are laid out on a standard
// label sheet format (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, report model.OptimizationReport) error {
	labels := CollectLabelInfos(report)
	if len(labels) == 0 {
		return fmt.Errorf("no pallets used, nothing to label")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelPageMarginLeft + float64(col)*labelWidth
		y := labelPageMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for pallet %d: %w", label.PalletSeq, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single pallet label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_pallet_%d", info.PalletSeq)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("Pallet %d - %s", info.PalletSeq, info.PalletLabel), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	contents := fmt.Sprintf("%d x %s (%d layers)", info.Cartons, info.CartonLabel, info.Layers)
	if pdf.GetStringWidth(contents) > textW {
		for len(contents) > 0 && pdf.GetStringWidth(contents+"...") > textW {
			contents = contents[:len(contents)-1]
		}
		contents += "..."
	}
	pdf.CellFormat(textW, 3.5, contents, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("%.1f cm / %.1f kg", info.StackHeight, info.LoadWeight), "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.SetFont("Helvetica", "I", 6)
	pdf.CellFormat(textW, 3, info.Container, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts one label per used pallet from a report
// for use in testing or alternative export formats. The last pallet
// carries the remainder of the demand, so its label reports the actual
// carton count, layer count, and weight rather than a full stack.
func CollectLabelInfos(report model.OptimizationReport) []LabelInfo {
	layout := report.PalletLayout
	if layout == nil {
		return nil
	}

	carton := report.Carton
	var labels []LabelInfo
	for i := 0; i < report.Summary.PalletsUsed; i++ {
		cartons := CartonsOnPallet(report, i)
		layers := layout.MaxLayers
		if layout.CartonsPerLayer > 0 {
			layers = (cartons + layout.CartonsPerLayer - 1) / layout.CartonsPerLayer
		}

		labels = append(labels, LabelInfo{
			PalletSeq:   i + 1,
			PalletLabel: report.Pallet.Label,
			CartonLabel: carton.Label,
			Cartons:     cartons,
			Layers:      layers,
			StackHeight: report.Pallet.Height + float64(layers)*carton.Height,
			LoadWeight:  float64(cartons) * carton.Weight,
			Container:   report.Container.Label,
		})
	}
	return labels
}

// CartonsOnPallet returns the carton count on the i-th used pallet. All
// pallets before the last carry a full stack; the last carries whatever
// remains of the placed demand.
func CartonsOnPallet(report model.OptimizationReport, i int) int {
	layout := report.PalletLayout
	used := report.Summary.PalletsUsed
	if layout == nil || i < 0 || i >= used {
		return 0
	}
	if i < used-1 {
		return layout.TotalCartons
	}
	return report.Summary.CartonsPlaced - layout.TotalCartons*(used-1)
}

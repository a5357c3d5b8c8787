package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// LabelInfo holds the data encoded into each cut piece's QR code.
type LabelInfo struct {
	ID             string           `json:"id"`
	Series         string           `json:"series"`
	ProfileKey     model.ProfileKey `json:"profile"`
	Length         float64          `json:"length_mm"`
	BarIndex       int              `json:"bar"`
	PieceIndex     int              `json:"piece"`
	StandardLength float64          `json:"bar_length_mm"`
	Oversized      bool             `json:"special_order,omitempty"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// CollectLabelInfos returns one label per cut piece, in bar order.
func CollectLabelInfos(bom model.BOM) []LabelInfo {
	var labels []LabelInfo
	for _, s := range bom.Series {
		for _, p := range s.Profiles {
			for barIdx, bar := range p.Bars {
				for pieceIdx, piece := range bar.Pieces {
					labels = append(labels, LabelInfo{
						ID:             uuid.New().String()[:8],
						Series:         s.SeriesName,
						ProfileKey:     p.ProfileKey,
						Length:         piece,
						BarIndex:       barIdx + 1,
						PieceIndex:     pieceIdx + 1,
						StandardLength: bar.StandardLength,
						Oversized:      bar.Oversized,
					})
				}
			}
		}
	}
	return labels
}

// ExportLabels writes the cut-piece labels of bom to path.
func ExportLabels(path string, bom model.BOM) error {
	return writeFile(path, func(w io.Writer) error { return WriteLabels(w, bom) })
}

// WriteLabels renders a PDF of QR-coded labels, one per cut piece, laid
// out on a standard label sheet (Avery 5160 / 3 columns x 10 rows on US
// Letter).
func WriteLabels(w io.Writer, bom model.BOM) error {
	labels := CollectLabelInfos(bom)
	if len(labels) == 0 {
		return fmt.Errorf("no cut pieces to generate labels for")
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

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label %s: %w", label.ID, err)
		}
	}

	return pdf.Output(w)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
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

	imgName := "qr_" + info.ID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Cut length
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 5, fmt.Sprintf("%.1f mm", info.Length), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+6)
	pdf.CellFormat(textW, 3.5, truncate(pdf, string(info.ProfileKey), textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+10)
	pdf.CellFormat(textW, 3, truncate(pdf, info.Series, textW), "", 1, "L", false, 0, "")
	pdf.SetXY(textX, y+labelPadding+13)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Bar %d / piece %d", info.BarIndex, info.PieceIndex), "", 1, "L", false, 0, "")

	if info.Oversized {
		pdf.SetXY(textX, y+labelPadding+16.5)
		pdf.SetFont("Helvetica", "B", 6)
		pdf.SetTextColor(200, 0, 0)
		pdf.CellFormat(textW, 3, "SPECIAL ORDER", "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// truncate shortens s with an ellipsis until it fits width.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}

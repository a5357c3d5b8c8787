// Package export renders quotations and bills of materials to PDF, Excel
// and QR-coded cut labels.
package export

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// partColor represents an RGB color for a cut piece.
type partColor struct {
	R, G, B int
}

// partColors is the palette used for pieces on a bar diagram.
var partColors = []partColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants for the cutting list (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0

	barHeight  = 7.0
	barSpacing = 4.0
	barLabelW  = 28.0
)

// ExportCutListPDF writes the cutting list of bom to path.
func ExportCutListPDF(path string, bom model.BOM) error {
	return writeFile(path, func(w io.Writer) error { return WriteCutListPDF(w, bom) })
}

// WriteCutListPDF renders one page per profile with its bar diagrams,
// followed by a summary page per series.
func WriteCutListPDF(w io.Writer, bom model.BOM) error {
	if countBars(bom) == 0 {
		return fmt.Errorf("no profile bars to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, s := range bom.Series {
		for _, p := range s.Profiles {
			if len(p.Bars) == 0 {
				continue
			}
			renderProfilePages(pdf, s, p)
		}
		pdf.AddPage()
		renderSeriesSummaryPage(pdf, s)
	}

	return pdf.Output(w)
}

// renderProfilePages draws the bars of one profile, continuing on new
// pages when they do not fit.
func renderProfilePages(pdf *fpdf.Fpdf, s model.BOMSeries, p model.BOMProfile) {
	drawWidth := pageWidth - marginLeft - marginRight - barLabelW
	scale := drawWidth / longestBar(p)

	y := pageHeight
	for i, bar := range p.Bars {
		if y+barHeight+barSpacing > pageHeight-marginBottom {
			pdf.AddPage()
			renderProfileHeader(pdf, s, p)
			y = drawAreaTop
		}
		drawBar(pdf, bar, i+1, marginLeft, y, scale)
		y += barHeight + barSpacing
	}
}

// renderProfileHeader writes the title and stats line of a profile page.
func renderProfileHeader(pdf *fpdf.Fpdf, s model.BOMSeries, p model.BOMProfile) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: %s (%.0f mm bars)", s.SeriesName, p.ProfileKey, p.StandardLength)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Bars: %d | Cut length: %.0f mm | Weight: %.2f kg | Offcuts: %d",
		len(p.Pieces), p.RequiredBars, p.TotalLength, p.TotalWeight, len(p.Offcuts))
	if n := p.OversizedPieces(); n > 0 {
		stats += fmt.Sprintf(" | Special order: %d", n)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")
}

// drawBar draws one stock bar with its pieces laid end to end.
func drawBar(pdf *fpdf.Fpdf, bar model.Bar, num int, x, y, scale float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(x, y)
	pdf.CellFormat(barLabelW-2, barHeight, fmt.Sprintf("Bar %d", num), "", 0, "L", false, 0, "")

	originX := x + barLabelW
	length := math.Max(bar.StandardLength, bar.Used)

	// Stock background
	pdf.SetFillColor(225, 225, 225)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.3)
	pdf.Rect(originX, y, length*scale, barHeight, "FD")

	// Kerf follows every piece except one that exhausts the bar.
	cuts := len(bar.Pieces)
	if bar.Remaining <= 0 {
		cuts--
	}
	kerf := 0.0
	if cuts > 0 {
		kerf = (bar.Used - sum(bar.Pieces)) / float64(cuts)
	}
	px := originX
	for i, piece := range bar.Pieces {
		col := partColors[i%len(partColors)]
		pw := piece * scale
		if bar.Oversized {
			pdf.SetFillColor(255, 200, 200)
			pdf.SetDrawColor(200, 0, 0)
		} else {
			pdf.SetFillColor(col.R, col.G, col.B)
			pdf.SetDrawColor(30, 30, 30)
		}
		pdf.Rect(px, y, pw, barHeight, "FD")

		label := fmt.Sprintf("%.1f", piece)
		pdf.SetFont("Helvetica", "", 7)
		if lw := pdf.GetStringWidth(label); lw < pw-1 {
			pdf.SetXY(px+(pw-lw)/2, y+1.5)
			pdf.CellFormat(lw, 4, label, "", 0, "C", false, 0, "")
		}
		px += pw + kerf*scale
	}

	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(80, 80, 80)
	note := fmt.Sprintf("left %.1f mm", bar.Remaining)
	if bar.Oversized {
		pdf.SetTextColor(200, 0, 0)
		note = "SPECIAL ORDER"
	}
	nw := pdf.GetStringWidth(note)
	pdf.SetXY(originX+length*scale-nw, y+barHeight)
	pdf.CellFormat(nw, 3, note, "", 0, "R", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
}

// renderSeriesSummaryPage lists every profile, glass and hardware line of
// one series.
func renderSeriesSummaryPage(pdf *fpdf.Fpdf, s model.BOMSeries) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, s.SeriesName+" - Material Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	headers := []string{"Profile", "Pieces", "Bar Length", "Bars", "Cut Length", "Weight", "Offcuts"}
	widths := []float64{60, 25, 35, 25, 40, 35, 30}
	rows := make([][]string, 0, len(s.Profiles))
	for _, p := range s.Profiles {
		rows = append(rows, []string{
			string(p.ProfileKey),
			fmt.Sprintf("%d", len(p.Pieces)),
			fmt.Sprintf("%.1f mm", p.StandardLength),
			fmt.Sprintf("%d", p.RequiredBars),
			fmt.Sprintf("%.1f mm", p.TotalLength),
			fmt.Sprintf("%.2f kg", p.TotalWeight),
			fmt.Sprintf("%d", len(p.Offcuts)),
		})
	}
	y = drawTable(pdf, "Profiles", headers, widths, rows, y)

	if len(s.Glass) > 0 || s.Mesh.Pieces > 0 {
		rows = rows[:0]
		for _, g := range s.Glass {
			rows = append(rows, []string{g.Description, fmt.Sprintf("%d", g.Pieces),
				fmt.Sprintf("%.2f", g.TotalAreaSqFt), fmt.Sprintf("%.3f", g.TotalAreaSqMt)})
		}
		if s.Mesh.Pieces > 0 {
			rows = append(rows, []string{"Insect mesh", fmt.Sprintf("%d", s.Mesh.Pieces),
				fmt.Sprintf("%.2f", s.Mesh.TotalAreaSqFt), fmt.Sprintf("%.3f", s.Mesh.TotalAreaSqMt)})
		}
		y = drawTable(pdf, "Glass and Mesh", []string{"Description", "Pieces", "Area (sq.ft)", "Area (sq.mt)"},
			[]float64{80, 25, 40, 40}, rows, y+6)
	}

	if len(s.Hardware) > 0 {
		rows = rows[:0]
		for _, h := range s.Hardware {
			rows = append(rows, []string{h.Name, fmt.Sprintf("%g", h.TotalQuantity),
				fmt.Sprintf("%.2f", h.UnitCost), fmt.Sprintf("%.2f", h.TotalQuantity*h.UnitCost)})
		}
		y = drawTable(pdf, "Hardware", []string{"Item", "Quantity", "Unit Cost", "Cost"},
			[]float64{80, 25, 40, 40}, rows, y+6)
	}

	if s.Gasket.PaneCount > 0 && y+14 < pageHeight-marginBottom {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(marginLeft, y+6)
		text := fmt.Sprintf("Glazing gasket: %.2f m for %d panes (%.2f m with %.0f%% waste)",
			s.Gasket.TotalLinearM, s.Gasket.PaneCount, s.Gasket.TotalWithWasteM, s.Gasket.WastePercent)
		pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4,
		fmt.Sprintf("Total bars: %d | Total weight: %.2f kg", s.TotalBars(), s.TotalWeight()), "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// drawTable renders a titled table with alternating row shading and
// returns the y position below it. Rows past the page bottom are dropped.
func drawTable(pdf *fpdf.Fpdf, title string, headers []string, widths []float64, rows [][]string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, title, "", 0, "L", false, 0, "")
	y += 9

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(widths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += widths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, row := range rows {
		if y+6 > pageHeight-marginBottom-6 {
			break
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(widths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += widths[j]
		}
		y += 6
	}
	return y
}

// drawHatchPattern draws diagonal lines inside a rectangle.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h, spacing float64) {
	pdf.SetLineWidth(0.1)
	maxDist := w + h
	for d := spacing; d < maxDist; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)
		pdf.Line(x1, y1, x2, y2)
	}
}

// writeFile creates path and streams render into it.
func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func longestBar(p model.BOMProfile) float64 {
	longest := p.StandardLength
	for _, b := range p.Bars {
		longest = math.Max(longest, math.Max(b.StandardLength, b.Used))
	}
	if longest <= 0 {
		return 1
	}
	return longest
}

// countBars returns the total number of bars across all series.
func countBars(bom model.BOM) int {
	total := 0
	for _, s := range bom.Series {
		for _, p := range s.Profiles {
			total += len(p.Bars)
		}
	}
	return total
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

package export

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/GlazeCut/internal/costing"
	"github.com/piwi3910/GlazeCut/internal/geometry"
	"github.com/piwi3910/GlazeCut/internal/model"
)

// Quotation layout constants (A4 portrait in mm).
const (
	qPageWidth  = 210.0
	qPageHeight = 297.0
	qContentW   = qPageWidth - marginLeft - marginRight
	rowHeight   = 42.0
	elevationW  = 44.0
	elevationH  = 36.0
	footerY     = qPageHeight - marginBottom
)

// quoteColumns are the text columns to the right of the elevation.
var quoteColumns = []struct {
	title string
	width float64
	align string
}{
	{"Description", 50, "L"},
	{"Qty", 10, "C"},
	{"Area", 24, "R"},
	{"Rate", 18, "R"},
	{"Amount", 24, "R"},
}

// ExportQuotationPDF writes the priced quotation of d to path.
func ExportQuotationPDF(path string, d model.Design) error {
	return writeFile(path, func(w io.Writer) error { return WriteQuotationPDF(w, d) })
}

// WriteQuotationPDF renders a quotation: a header, one row per item with
// its elevation drawing, then the discount, GST and grand total.
func WriteQuotationPDF(w io.Writer, d model.Design) error {
	if len(d.Items) == 0 {
		return fmt.Errorf("no items to quote")
	}

	q := costing.Quote(d.Settings, d.Items)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle("Quotation", false)
	pdf.SetCreator("GlazeCut", false)

	pdf.AddPage()
	y := renderQuoteHeader(pdf, d.Settings)
	y = renderQuoteTableHeader(pdf, y)

	for i, item := range d.Items {
		if y+rowHeight > footerY-8 {
			renderQuoteFooter(pdf)
			pdf.AddPage()
			y = renderQuoteTableHeader(pdf, marginTop)
		}
		renderQuoteRow(pdf, i+1, item, q.Lines[i], d.Settings.Currency, y)
		y += rowHeight
	}

	if y+50 > footerY-8 {
		renderQuoteFooter(pdf)
		pdf.AddPage()
		y = marginTop
	}
	y = renderTotals(pdf, q, y+4)

	if d.Settings.Notes != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetXY(marginLeft, y+4)
		pdf.CellFormat(qContentW, 5, "Notes", "", 2, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(qContentW, 4.5, d.Settings.Notes, "", "L", false)
	}
	renderQuoteFooter(pdf)

	return pdf.Output(w)
}

func renderQuoteHeader(pdf *fpdf.Fpdf, s model.QuotationSettings) float64 {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(qContentW/2, 10, s.CompanyName, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(qContentW/2, 10, "QUOTATION", "", 0, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+11)
	customer := s.CustomerName
	if customer == "" {
		customer = "-"
	}
	pdf.CellFormat(qContentW/2, 5, "Customer: "+customer, "", 0, "L", false, 0, "")
	pdf.CellFormat(qContentW/2, 5, "Date: "+time.Now().Format("02 Jan 2006"), "", 0, "R", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+18, qPageWidth-marginRight, marginTop+18)
	return marginTop + 22
}

func renderQuoteTableHeader(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetDrawColor(150, 150, 150)
	pdf.SetLineWidth(0.2)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(10, 6, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(elevationW, 6, "Elevation", "1", 0, "C", true, 0, "")
	for _, c := range quoteColumns {
		pdf.CellFormat(c.width, 6, c.title, "1", 0, "C", true, 0, "")
	}
	return y + 6
}

func renderQuoteRow(pdf *fpdf.Fpdf, num int, item model.QuotationItem, line costing.Line, currency string, y float64) {
	pdf.SetDrawColor(150, 150, 150)
	pdf.SetLineWidth(0.2)
	pdf.Rect(marginLeft, y, qContentW, rowHeight, "D")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y+2)
	pdf.CellFormat(10, 5, fmt.Sprintf("%d", num), "", 0, "C", false, 0, "")

	cfg := item.Config
	drawElevation(pdf, geometry.Decompose(cfg), marginLeft+10+2, y+2, elevationW-4, elevationH-4)
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(marginLeft+10, y+elevationH-1)
	pdf.CellFormat(elevationW, 4, fmt.Sprintf("%.0f x %.0f mm", cfg.OverallWidth(), cfg.Height), "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	x := marginLeft + 10 + elevationW
	desc := quoteColumns[0]
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(x+1, y+2)
	pdf.CellFormat(desc.width-2, 5, item.Label, "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for _, text := range describe(cfg) {
		pdf.SetX(x + 1)
		pdf.CellFormat(desc.width-2, 4, text, "", 2, "L", false, 0, "")
	}
	if line.HardwareCost.IsPositive() {
		pdf.SetX(x + 1)
		pdf.CellFormat(desc.width-2, 4, "Hardware: "+costing.DisplayMoney(currency, line.HardwareCost), "", 2, "L", false, 0, "")
	}
	x += desc.width

	values := []string{
		fmt.Sprintf("%d", item.Quantity),
		fmt.Sprintf("%s %s", costing.Display(line.Area), line.AreaUnit),
		costing.Display(line.Rate),
		costing.DisplayWhole(line.Total),
	}
	pdf.SetFont("Helvetica", "", 9)
	for i, v := range values {
		c := quoteColumns[i+1]
		pdf.SetXY(x, y+2)
		pdf.CellFormat(c.width-1, 5, v, "", 0, c.align, false, 0, "")
		x += c.width
	}
}

// describe returns the short description lines of a structure.
func describe(cfg model.StructureConfig) []string {
	lines := []string{cfg.Type.String()}
	if cfg.Series.Name != "" {
		lines = append(lines, cfg.Series.Name)
	}
	switch {
	case cfg.Type == model.TypeSliding && cfg.Sliding != nil:
		lines[0] += " " + string(cfg.Sliding.ShutterConfig)
	case cfg.Type == model.TypeCorner && cfg.Corner != nil:
		lines = append(lines, fmt.Sprintf("L: %s %.0f / R: %s %.0f",
			cfg.Corner.Left.Type, cfg.Corner.Left.Width, cfg.Corner.Right.Type, cfg.Corner.Right.Width))
	}
	if g := cfg.Glass.Description(); g != "" {
		lines = append(lines, g)
	}
	if cfg.Color != "" {
		lines = append(lines, cfg.Color)
	}
	return lines
}

// totalRow is one label/value line of the totals block.
type totalRow struct {
	label string
	value string
	bold  bool
}

func renderTotals(pdf *fpdf.Fpdf, q costing.Quotation, y float64) float64 {
	currency := q.Settings.Currency
	rows := []totalRow{{"Subtotal", costing.DisplayMoney(currency, q.Subtotal), false}}
	if q.DiscountAmount.IsPositive() {
		label := "Discount"
		if q.Settings.DiscountType != model.DiscountFlat {
			label = fmt.Sprintf("Discount (%g%%)", q.Settings.DiscountValue)
		}
		rows = append(rows,
			totalRow{label, "- " + costing.DisplayMoney(currency, q.DiscountAmount), false},
			totalRow{"Taxable", costing.DisplayMoney(currency, q.Taxable), false})
	}
	rows = append(rows,
		totalRow{fmt.Sprintf("GST (%g%%)", q.Settings.GSTPercent), costing.DisplayMoney(currency, q.GSTAmount), false},
		totalRow{"Grand Total", costing.DisplayMoney(currency, q.GrandTotal), true})

	x := qPageWidth - marginRight - 90
	for _, r := range rows {
		style := ""
		if r.bold {
			style = "B"
			pdf.SetFillColor(230, 230, 230)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.SetXY(x, y)
		pdf.CellFormat(50, 7, r.label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(40, 7, r.value, "1", 0, "R", true, 0, "")
		y += 7
	}
	return y
}

func renderQuoteFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, footerY)
	pdf.CellFormat(qContentW, 4, fmt.Sprintf("Page %d - Generated by GlazeCut", pdf.PageNo()), "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// drawElevation draws m scaled to fit the box at (x, y), centred.
func drawElevation(pdf *fpdf.Fpdf, m model.GeometryModel, x, y, w, h float64) {
	if m.Width <= 0 || m.Height <= 0 {
		return
	}
	scale := math.Min(w/m.Width, h/m.Height)
	ox := x + (w-m.Width*scale)/2
	oy := y + (h-m.Height*scale)/2
	at := func(r model.Rect) (float64, float64, float64, float64) {
		return ox + r.X*scale, oy + r.Y*scale, r.W * scale, r.H * scale
	}

	pdf.SetLineWidth(0.1)
	for _, g := range m.Glass {
		gx, gy, gw, gh := at(g.Rect)
		pdf.SetFillColor(200, 228, 245)
		pdf.SetDrawColor(90, 140, 180)
		switch g.Shape {
		case model.ShapeOval:
			pdf.Ellipse(gx+gw/2, gy+gh/2, gw/2, gh/2, 0, "FD")
		case model.ShapeRounded, model.ShapeCapsule:
			pdf.RoundedRect(gx, gy, gw, gh, g.CornerRadius*scale, "1234", "FD")
		default:
			pdf.Rect(gx, gy, gw, gh, "FD")
		}
	}

	for _, ms := range m.Mesh {
		mx, my, mw, mh := at(ms.Rect)
		pdf.SetFillColor(235, 235, 235)
		pdf.SetDrawColor(160, 160, 160)
		pdf.Rect(mx, my, mw, mh, "FD")
		drawHatchPattern(pdf, mx, my, mw, mh, 1.5)
	}

	// Mesh-layer members first so the glass shutters sit on top.
	profiles := append([]model.ProfileSegment(nil), m.Profiles...)
	sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].Layer < profiles[j].Layer })
	for _, p := range profiles {
		px, py, pw, ph := at(p.Rect)
		if p.Layer == model.LayerMesh {
			pdf.SetFillColor(215, 215, 215)
		} else {
			pdf.SetFillColor(170, 170, 175)
		}
		pdf.SetDrawColor(70, 70, 70)
		pdf.SetLineWidth(0.1)
		pdf.Rect(px, py, pw, ph, "FD")
	}

	for _, mk := range m.Markers {
		drawMarker(pdf, mk, at)
	}

	pdf.SetFillColor(40, 40, 40)
	for _, hd := range m.Handles {
		hx, hy := ox+hd.X*scale, oy+hd.Y*scale
		if hd.Orientation == model.HandleHorizontal {
			pdf.Rect(hx-2, hy-0.4, 4, 0.8, "F")
		} else {
			pdf.Rect(hx-0.4, hy-2, 0.8, 4, "F")
		}
	}
}

// drawMarker draws the elevation symbol of a marker. Hinge triangles point
// at the hinged edge.
func drawMarker(pdf *fpdf.Fpdf, mk model.Marker, at func(model.Rect) (float64, float64, float64, float64)) {
	x, y, w, h := at(mk.Rect)
	if w <= 0 || h <= 0 {
		return
	}
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.15)
	switch mk.Kind {
	case model.MarkerHingeLeft:
		pdf.Line(x+w, y, x, y+h/2)
		pdf.Line(x, y+h/2, x+w, y+h)
	case model.MarkerHingeRight:
		pdf.Line(x, y, x+w, y+h/2)
		pdf.Line(x+w, y+h/2, x, y+h)
	case model.MarkerSlide:
		cy := y + h/2
		pdf.Line(x+w*0.25, cy, x+w*0.75, cy)
		pdf.Line(x+w*0.75, cy, x+w*0.75-1, cy-0.8)
		pdf.Line(x+w*0.75, cy, x+w*0.75-1, cy+0.8)
	case model.MarkerExhaustFan:
		pdf.Circle(x+w/2, y+h/2, math.Min(w, h)*0.35, "D")
	case model.MarkerFixed:
		pdf.SetFont("Helvetica", "", 6)
		pdf.SetTextColor(60, 60, 60)
		pdf.SetXY(x, y+h/2-2)
		pdf.CellFormat(w, 4, "F", "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}

package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/GlazeCut/internal/model"
)

func TestExportQuotationPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.pdf")

	if err := ExportQuotationPDF(path, buildTestDesign()); err != nil {
		t.Fatalf("ExportQuotationPDF returned error: %v", err)
	}
	assertPDFFile(t, path)
}

func TestWriteQuotationPDF_NoItems(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteQuotationPDF(&buf, model.NewDesign()); err == nil {
		t.Fatal("expected error for a design without items, got nil")
	}
}

func TestWriteQuotationPDF_ManyItemsAndFlatDiscount(t *testing.T) {
	d := buildTestDesign()
	d.Settings.DiscountType = model.DiscountFlat
	d.Settings.DiscountValue = 500
	base := d.Items
	for i := 0; i < 3; i++ {
		for _, item := range base {
			item.Label = fmt.Sprintf("%s-%d", item.Label, i)
			d.Items = append(d.Items, item)
		}
	}

	var buf bytes.Buffer
	if err := WriteQuotationPDF(&buf, d); err != nil {
		t.Fatalf("WriteQuotationPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestWriteQuotationPDF_DegenerateItem(t *testing.T) {
	d := model.NewDesign()
	d.Items = append(d.Items, model.NewQuotationItem("Zero", model.StructureConfig{
		Type:   model.TypeSliding,
		Series: model.DefaultSeries(),
	}, 1, 550, model.AreaSqFt))

	var buf bytes.Buffer
	if err := WriteQuotationPDF(&buf, d); err != nil {
		t.Fatalf("WriteQuotationPDF returned error: %v", err)
	}
}

func TestDescribe(t *testing.T) {
	d := buildTestDesign()

	sliding := describe(d.Items[0].Config)
	assert.Equal(t, []string{"Sliding 2G1M", "Domal 27mm", "5mm Clear"}, sliding)

	corner := describe(d.Items[5].Config)
	assert.Equal(t, "Corner", corner[0])
	assert.Contains(t, corner, "L: Sliding 900 / R: Casement 900")

	cfg := d.Items[3].Config
	cfg.Series = model.ProfileSeries{}
	cfg.Glass = model.GlassSpec{}
	cfg.Color = "Bronze"
	assert.Equal(t, []string{"Mirror", "Clear", "Bronze"}, describe(cfg))
}

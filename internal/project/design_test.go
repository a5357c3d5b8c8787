package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GlazeCut/internal/model"
)

func sampleDesign() model.Design {
	d := model.NewDesign()
	d.Settings.CustomerName = "R. Sharma"
	d.Settings.DiscountValue = 5

	slider := model.StructureConfig{
		Type:        model.TypeSliding,
		Width:       1500,
		Height:      1200,
		Series:      model.DefaultSeries(),
		FixedPanels: []model.FixedPanel{{Position: model.PositionTop, Size: 300}},
		Glass:       model.GlassSpec{Type: "Clear", Thickness: 5},
		Georgian: model.GeorgianConfig{Patterns: map[string]model.GeorgianPattern{
			model.DefaultGeorgianKey: {Vertical: model.BarSet{Count: 1, Offset: 200}},
		}},
		Sliding: model.NewSlidingConfig(model.Shutters2G1M),
	}
	casement := model.StructureConfig{
		Type:   model.TypeCasement,
		Width:  1200,
		Height: 1000,
		Series: model.DefaultSeries(),
		Grid: &model.GridConfig{
			VerticalDividers: []float64{0.5},
			Cells:            []model.GridCell{{Row: 0, Col: 1, Type: model.CellDoor, HingeSide: model.HingeRight}},
		},
	}
	d.Items = append(d.Items,
		model.NewQuotationItem("W1", slider, 2, 550, model.AreaSqFt),
		model.NewQuotationItem("W2", casement, 1, 6000, model.AreaSqMt),
	)
	return d
}

func TestSaveAndLoadDesignRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job"+DesignExt)
	d := sampleDesign()

	require.NoError(t, Save(path, d))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d, loaded)
}

func TestSaveEmptyDesignWritesItemsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, Save(path, model.Design{Settings: model.DefaultQuotationSettings()}))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, loaded.Items)
	assert.Empty(t, loaded.Items)
}

func TestImportDesignRejectsWrongShape(t *testing.T) {
	cases := map[string]string{
		"not json":          `{"settings":`,
		"array document":    `[]`,
		"missing items":     `{"settings":{}}`,
		"items not array":   `{"settings":{},"items":{"a":1}}`,
		"items null":        `{"settings":{},"items":null}`,
		"missing settings":  `{"items":[]}`,
		"settings not obj":  `{"settings":"x","items":[]}`,
		"bad item contents": `{"settings":{},"items":[{"quantity":"two"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			d, err := ImportDesign([]byte(body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDesign), "got %v", err)
			assert.Empty(t, d.Items, "no partial import")
		})
	}
}

func TestImportDesignSanitisesItems(t *testing.T) {
	body := `{"settings":{"currency":"INR","gst_percent":18},"items":[
		{"label":"W1","quantity":-3,"config":{"type":"sliding","width":-100,"height":1200}}
	]}`
	d, err := ImportDesign([]byte(body))
	require.NoError(t, err)
	require.Len(t, d.Items, 1)

	item := d.Items[0]
	assert.NotEmpty(t, item.ID)
	assert.Zero(t, item.Quantity)
	assert.Equal(t, model.AreaSqFt, item.AreaUnit)
	assert.Zero(t, item.Config.Width)
	assert.Equal(t, 1200.0, item.Config.Height)
}

func TestLoadMissingDesign(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GlazeCut/internal/model"
)

func TestLoadCatalogCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, cat.Series, len(model.DefaultCatalog().Series))
	assert.NotEmpty(t, cat.Glass)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default catalog should be written")

	again, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, cat.Series[0].ID, again.Series[0].ID, "second load reads the saved file")
}

func TestSaveAndLoadCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	cat := model.DefaultCatalog()
	cat.Series[0].Profiles[model.ProfileOuterFrame] = model.ProfileSpec{Width: 63, StandardLength: 5800, WeightPerMeter: 1.01}

	require.NoError(t, SaveCatalog(path, cat))
	loaded, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, cat, loaded)
}

func TestLoadCatalogInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2"), 0644))
	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestImportCatalogMergesByID(t *testing.T) {
	dir := t.TempDir()
	existing := model.DefaultCatalog()

	extra := model.NewProfileSeries("Slim 20mm")
	extra.Profiles[model.ProfileOuterFrame] = model.ProfileSpec{Width: 45}
	incoming := model.Catalog{
		Series: []model.ProfileSeries{existing.Series[0], extra},
		Glass:  []model.GlassPreset{existing.Glass[0], model.NewGlassPreset("8mm Toughened", model.GlassSpec{Type: "Toughened", Thickness: 8})},
	}
	path := filepath.Join(dir, "incoming.json")
	require.NoError(t, ExportCatalog(path, incoming))

	merged, err := ImportCatalog(path, existing)
	require.NoError(t, err)
	assert.Len(t, merged.Series, len(existing.Series)+1)
	assert.Len(t, merged.Glass, len(existing.Glass)+1)
	assert.NotNil(t, merged.FindSeriesByName("Slim 20mm"))
}

func TestImportCatalogMissingFile(t *testing.T) {
	existing := model.DefaultCatalog()
	merged, err := ImportCatalog(filepath.Join(t.TempDir(), "missing.json"), existing)
	assert.Error(t, err)
	assert.Len(t, merged.Series, len(existing.Series), "existing catalog returned unchanged")
}

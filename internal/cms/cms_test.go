// internal/cms/cms_test.go
package cms

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

func writeRecord(t *testing.T, dir, name string, rec Record) {
	t.Helper()
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestBuild_OrdersCategoriesAndIDs(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "vetement-1.json", Record{ID: "vetement-1", Name: "Boubou", Price: 15000, Category: "vetement", Image: "/images/boubou.jpg"})
	writeRecord(t, dir, "corporel-10.json", Record{ID: "corporel-10", Name: "Gommage", Price: 4000, Category: "corporel", Image: "/images/gommage.jpg"})
	writeRecord(t, dir, "corporel-2.json", Record{ID: "corporel-2", Name: "Musc Tahara", Price: 1500, Category: "corporel", Image: "/images/musc.jpg"})
	writeRecord(t, dir, "maison-1.json", Record{ID: "maison-1", Name: "Encens Oud", Price: 3000, Category: "maison", Image: "/images/oud.jpg"})

	products, err := Build(dir)
	require.NoError(t, err)
	require.Len(t, products, 4)

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	// Canonical category order, numeric id order within a category. The
	// numeric sort matters: lexically "corporel-10" would sort before
	// "corporel-2".
	assert.Equal(t, []string{"corporel-2", "corporel-10", "maison-1", "vetement-1"}, ids)
}

func TestBuild_NormalizesLegacyCategories(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "chambre-1.json", Record{ID: "chambre-1", Name: "Encens Chambre", Price: 2500, Category: "chambre", Image: "/images/chambre.jpg"})
	writeRecord(t, dir, "thiouraye-3.json", Record{ID: "thiouraye-3", Name: "Thiouraye Royal", Price: 5000, Category: "thiouraye", Image: "/images/thiouraye.jpg"})

	products, err := Build(dir)
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, catalog.CategoryMaison, p.Category)
	}
}

func TestBuild_PrefersImageURL(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "corporel-1.json", Record{
		ID:       "corporel-1",
		Name:     "Huile Parfumée",
		Price:    2000,
		Category: "corporel",
		Image:    "images/huile.jpg",
		ImageURL: "https://cdn.example.com/huile.jpg",
	})
	writeRecord(t, dir, "corporel-2.json", Record{
		ID:       "corporel-2",
		Name:     "Savon Noir",
		Price:    1000,
		Category: "corporel",
		Image:    "images/savon.jpg",
	})

	products, err := Build(dir)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "https://cdn.example.com/huile.jpg", products[0].Image)
	// Relative paths get a leading slash so the page can serve them.
	assert.Equal(t, "/images/savon.jpg", products[1].Image)
}

func TestBuild_SkipsNonJSONFiles(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "corporel-1.json", Record{ID: "corporel-1", Name: "Musc", Price: 1500, Category: "corporel"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# products"), 0o644))

	products, err := Build(dir)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestBuild_MissingDirectory(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestSplitRoundTrip(t *testing.T) {
	products := []catalog.Product{
		{ID: "corporel-1", Name: "Musc Tahara", Price: 1500, Image: "/images/musc.jpg", Category: "corporel"},
		{ID: "maison-2", Name: "Encens Oud", Price: 3000, Image: "https://cdn.example.com/oud.jpg", Category: "maison"},
	}

	workDir := t.TempDir()
	catalogPath := filepath.Join(workDir, "products.json")
	require.NoError(t, WriteCatalog(products, catalogPath))

	outDir := filepath.Join(workDir, "products")
	written, err := Split(catalogPath, outDir)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	rebuilt, err := Build(outDir)
	require.NoError(t, err)
	assert.Equal(t, products, rebuilt)

	// External images round-trip through imageUrl, not image.
	data, err := os.ReadFile(filepath.Join(outDir, "maison-2.json"))
	require.NoError(t, err)
	var rec Record
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Empty(t, rec.Image)
	assert.Equal(t, "https://cdn.example.com/oud.jpg", rec.ImageURL)
}

func TestSplit_SkipsRecordsWithoutID(t *testing.T) {
	workDir := t.TempDir()
	catalogPath := filepath.Join(workDir, "products.json")
	require.NoError(t, WriteCatalog([]catalog.Product{
		{ID: "", Name: "Orphan", Price: 100, Category: "corporel"},
		{ID: "corporel-1", Name: "Musc", Price: 1500, Category: "corporel"},
	}, catalogPath))

	written, err := Split(catalogPath, filepath.Join(workDir, "products"))
	require.NoError(t, err)
	assert.Equal(t, 1, written)
}

// internal/cms/cms.go

// Package cms converts between the flat-file product format (one JSON file
// per product, named by product id) and the aggregated catalog array the
// storefront fetches. The storefront itself never writes these files; this
// package backs the catalogctl tool.
package cms

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Record is the per-product file shape. ImageURL holds externally hosted
// images; Image holds site-relative paths. ImageURL wins when both are set.
type Record struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Build reads every .json file in dir and returns the aggregated catalog:
// categories in canonical order, each sorted by the numeric suffix of the
// product id.
func Build(dir string) ([]catalog.Product, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read product directory: %w", err)
	}

	buckets := make(map[string][]catalog.Product)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}

		p := rec.toProduct()
		buckets[p.Category] = append(buckets[p.Category], p)
	}

	var products []catalog.Product
	for _, category := range catalog.Categories() {
		bucket := buckets[category]
		sort.SliceStable(bucket, func(i, j int) bool {
			return idNumber(bucket[i].ID) < idNumber(bucket[j].ID)
		})
		products = append(products, bucket...)
	}

	return products, nil
}

// WriteCatalog writes the aggregated catalog array to path.
func WriteCatalog(products []catalog.Product, path string) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// Split reads an aggregated catalog file and writes one record file per
// product into dir, creating it if needed. Returns the number of records
// written.
func Split(catalogPath, dir string) (int, error) {
	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read catalog: %w", err)
	}

	var products []catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return 0, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create product directory: %w", err)
	}

	written := 0
	for _, p := range products {
		if p.ID == "" {
			continue
		}

		rec := fromProduct(p)
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return written, fmt.Errorf("failed to serialize %s: %w", p.ID, err)
		}

		path := filepath.Join(dir, p.ID+".json")
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written++
	}

	return written, nil
}

func (r Record) toProduct() catalog.Product {
	image := r.Image
	if r.ImageURL != "" {
		image = r.ImageURL
	} else if image != "" && !strings.HasPrefix(image, "/") && !strings.HasPrefix(image, "http") {
		image = "/" + image
	}

	return catalog.Product{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		Image:    image,
		Category: catalog.NormalizeCategory(r.Category),
	}
}

func fromProduct(p catalog.Product) Record {
	rec := Record{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
	}

	if strings.HasPrefix(p.Image, "http") {
		rec.ImageURL = p.Image
	} else {
		rec.Image = p.Image
	}
	return rec
}

// idNumber extracts the numeric suffix of ids like "corporel-12"; ids
// without one sort first.
func idNumber(id string) int {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) < 2 {
		return 0
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return n
}

// internal/domain/catalog/store.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
)

// Store holds the in-memory product catalog, partitioned into category
// buckets. It is populated by Load and read by everything else; a failed
// load keeps the previous state so the storefront degrades to empty
// categories instead of breaking.
type Store struct {
	mu      sync.RWMutex
	buckets map[string][]Product

	source     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewStore creates a catalog store reading from the configured source.
func NewStore(cfg *config.Config, logger *logrus.Logger) *Store {
	return &Store{
		buckets:    make(map[string][]Product),
		source:     cfg.Catalog.Source,
		httpClient: &http.Client{Timeout: cfg.Catalog.FetchTimeout},
		logger:     logger,
	}
}

// Load fetches the catalog document and replaces the in-memory buckets on
// success. On any failure the previous catalog is kept and the error is
// returned for the caller to log; it is never fatal to the service.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.fetch(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Catalog load failed, keeping previous catalog")
		return err
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		s.logger.WithError(err).Warn("Catalog document is malformed, keeping previous catalog")
		return fmt.Errorf("failed to decode catalog document: %w", err)
	}

	buckets := make(map[string][]Product)
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		p.Category = NormalizeCategory(p.Category)
		buckets[p.Category] = append(buckets[p.Category], p)
	}

	s.mu.Lock()
	s.buckets = buckets
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"products":   len(products),
		"categories": len(buckets),
	}).Info("Catalog loaded")

	return nil
}

// ByCategory returns a restartable sequence over the products of a category,
// in catalog order. An unknown category yields an empty sequence.
func (s *Store) ByCategory(category string) iter.Seq[Product] {
	return func(yield func(Product) bool) {
		s.mu.RLock()
		bucket := s.buckets[category]
		s.mu.RUnlock()

		for _, p := range bucket {
			if !yield(p) {
				return
			}
		}
	}
}

// ByID scans all buckets for a product. The catalog holds tens of items, so
// a linear scan is fine.
func (s *Store) ByID(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, bucket := range s.buckets {
		for _, p := range bucket {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Product{}, false
}

// Size returns the total number of products currently loaded.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, bucket := range s.buckets {
		total += len(bucket)
	}
	return total
}

func (s *Store) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(s.source, "http://") || strings.HasPrefix(s.source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.source, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build catalog request: %w", err)
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch catalog: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	}

	data, err := os.ReadFile(s.source)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return data, nil
}

// internal/domain/catalog/store_test.go
package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func newTestStore(t *testing.T, source string) *Store {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := &config.Config{}
	cfg.Catalog.Source = source
	cfg.Catalog.FetchTimeout = 2 * time.Second

	return NewStore(cfg, logger)
}

func collect(seq func(func(Product) bool)) []Product {
	var out []Product
	seq(func(p Product) bool {
		out = append(out, p)
		return true
	})
	return out
}

func TestStore_Load(t *testing.T) {
	body := `[
		{"id":"corporel-1","name":"Musc Tahara","price":5000,"image":"/img/musc.jpg","category":"corporel"},
		{"id":"chambre-1","name":"Encens Royal","price":3500,"image":"/img/encens.jpg","category":"chambre"},
		{"id":"thiouraye-2","name":"Thiouraye Premium","price":2500,"image":"/img/thiouraye.jpg","category":"thiouraye"},
		{"id":"vetement-1","name":"Boubou Brodé","price":15000,"image":"/img/boubou.jpg","category":"vetement"}
	]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	store := newTestStore(t, srv.URL)
	require.NoError(t, store.Load(context.Background()))

	t.Run("legacy categories are filed under maison", func(t *testing.T) {
		maison := collect(store.ByCategory(CategoryMaison))
		require.Len(t, maison, 2)
		assert.Equal(t, "chambre-1", maison[0].ID)
		assert.Equal(t, CategoryMaison, maison[0].Category)
		assert.Equal(t, "thiouraye-2", maison[1].ID)
	})

	t.Run("lookup by id scans every bucket", func(t *testing.T) {
		p, ok := store.ByID("vetement-1")
		require.True(t, ok)
		assert.Equal(t, "Boubou Brodé", p.Name)
		assert.Equal(t, int64(15000), p.Price)

		_, ok = store.ByID("missing")
		assert.False(t, ok)
	})

	t.Run("unknown category yields empty sequence", func(t *testing.T) {
		assert.Empty(t, collect(store.ByCategory("bijoux")))
	})

	t.Run("category lookups resolve aliases but never fall back", func(t *testing.T) {
		// Legacy aliases reach the maison bucket; an unknown name must come
		// back empty rather than borrowing the corporel bucket.
		assert.Len(t, collect(store.ByCategory(ResolveAlias("chambre"))), 2)
		assert.Len(t, collect(store.ByCategory(ResolveAlias("thiouraye"))), 2)
		assert.Empty(t, collect(store.ByCategory(ResolveAlias("bijoux"))))
	})

	t.Run("sequences are restartable", func(t *testing.T) {
		seq := store.ByCategory(CategoryMaison)
		assert.Len(t, collect(seq), 2)
		assert.Len(t, collect(seq), 2)
	})

	assert.Equal(t, 4, store.Size())
}

func TestStore_LoadFailure(t *testing.T) {
	t.Run("non-success status leaves catalog empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		store := newTestStore(t, srv.URL)
		require.Error(t, store.Load(context.Background()))

		for _, category := range Categories() {
			assert.Empty(t, collect(store.ByCategory(category)))
		}
	})

	t.Run("malformed body keeps previous catalog", func(t *testing.T) {
		broken := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if broken {
				w.Write([]byte("{not json"))
				return
			}
			w.Write([]byte(`[{"id":"corporel-1","name":"Musc","price":5000,"category":"corporel"}]`))
		}))
		defer srv.Close()

		store := newTestStore(t, srv.URL)
		require.NoError(t, store.Load(context.Background()))

		broken = true
		require.Error(t, store.Load(context.Background()))

		_, ok := store.ByID("corporel-1")
		assert.True(t, ok, "previous catalog should survive a failed reload")
	})

	t.Run("missing file leaves catalog empty", func(t *testing.T) {
		store := newTestStore(t, "/does/not/exist.json")
		require.Error(t, store.Load(context.Background()))
		assert.Zero(t, store.Size())
	})
}

func TestResolveAlias(t *testing.T) {
	assert.Equal(t, CategoryMaison, ResolveAlias("chambre"))
	assert.Equal(t, CategoryMaison, ResolveAlias("thiouraye"))
	assert.Equal(t, CategoryCorporel, ResolveAlias("corporel"))
	assert.Equal(t, "bijoux", ResolveAlias("bijoux"), "unknown categories stay unknown")
	assert.Equal(t, "", ResolveAlias(""))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, CategoryMaison, NormalizeCategory("chambre"))
	assert.Equal(t, CategoryMaison, NormalizeCategory("thiouraye"))
	assert.Equal(t, CategoryVetement, NormalizeCategory("vetement"))
	assert.Equal(t, CategoryCorporel, NormalizeCategory(""))
	assert.Equal(t, CategoryCorporel, NormalizeCategory("parfum"))
}

package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Shyam-2315/Grocery-Store/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Fetcher pulls the full product list from the backend inventory service.
type Fetcher interface {
	FetchProducts(ctx context.Context, credential string) ([]domain.Product, error)
}

// Cache holds the last fetched catalog snapshot for the session. A refresh
// replaces the whole set; there are no partial updates. A failed refresh
// keeps the previous snapshot serving, stale-but-available beats empty.
type Cache struct {
	fetcher Fetcher
	sfg     singleflight.Group // collapses concurrent refreshes

	mu        sync.RWMutex
	products  []domain.Product
	fetchedAt time.Time
}

// NewCache creates an empty cache backed by the given fetcher.
func NewCache(fetcher Fetcher) *Cache {
	return &Cache{fetcher: fetcher}
}

// Refresh fetches the catalog and replaces the snapshot wholesale. On error
// the current snapshot is left intact and the error is returned for the
// caller to surface as a warning.
func (c *Cache) Refresh(ctx context.Context, credential string) error {
	_, err, _ := c.sfg.Do("catalog", func() (interface{}, error) {
		products, err := c.fetcher.FetchProducts(ctx, credential)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.products = products
		c.fetchedAt = time.Now()
		c.mu.Unlock()
		return nil, nil
	})
	return err
}

// All returns a copy of the current snapshot in backend order.
func (c *Cache) All() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// FindByID looks up a single product in the snapshot.
func (c *Cache) FindByID(id int64) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// SearchByName does a case-insensitive substring match over product names.
// An empty query returns the full snapshot, matching the POS search box
// behavior of listing everything until the operator types.
func (c *Cache) SearchByName(query string) []domain.Product {
	if query == "" {
		return c.All()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(query)
	var out []domain.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// FetchedAt returns when the snapshot was last replaced. Zero until the
// first successful refresh.
func (c *Cache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}

// Package scan maps a raw scanner or search-field token to a catalog product.
package scan

import (
	"errors"
	"strings"

	"github.com/Shyam-2315/Grocery-Store/internal/domain"
)

// ErrProductNotFound is returned when the token matches no catalog entry.
var ErrProductNotFound = errors.New("product not found")

// Resolve matches a scan token against the catalog snapshot. Precedence:
// exact barcode first, then case-insensitive exact name. Scans never do
// fuzzy or substring matching; that lives in the free-text catalog search.
//
// Stock is deliberately not checked here: a zero-stock product still
// resolves and can be added, matching the backend's permissive behavior.
func Resolve(token string, products []domain.Product) (domain.Product, error) {
	for _, p := range products {
		if p.Barcode != "" && p.Barcode == token {
			return p, nil
		}
	}

	for _, p := range products {
		if strings.EqualFold(p.Name, token) {
			return p, nil
		}
	}

	return domain.Product{}, ErrProductNotFound
}

package domain

// Product is one sellable item from the store's catalog. The terminal never
// mutates products; the backend inventory service is the source of truth and
// the terminal only holds the last fetched snapshot.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Barcode       string  `json:"barcode,omitempty"`
	Category      string  `json:"category,omitempty"`
	CostPrice     float64 `json:"cost_price"`
	SellingPrice  float64 `json:"selling_price"`
	StockQuantity int     `json:"stock_quantity"`
	MinStockLevel int     `json:"min_stock_level"`
	TenantID      int64   `json:"tenant_id,omitempty"`
}

// LowStock reports whether the product is at or below its reorder level.
// Informational only, it never blocks a sale.
func (p Product) LowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}

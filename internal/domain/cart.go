package domain

// CartLine is one product entry in the pending sale. ProductName and
// UnitPrice are captured when the line is created; a later catalog price
// change does not touch lines already in the cart.
type CartLine struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Totals holds the derived amounts for a cart, rounded to two decimal places
// for display. They are recomputed from the lines on every read, never stored.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

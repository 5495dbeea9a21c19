package domain

// PaymentMethod represents how the customer pays for the sale.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Valid reports whether the method is one the backend accepts.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

func (m PaymentMethod) String() string {
	return string(m)
}

// CheckoutRequest is the payload submitted to the ledger service. Items keep
// the cart order; the JSON shape matches the backend transaction contract.
type CheckoutRequest struct {
	Items         []CartLine    `json:"items"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// Transaction is the ledger's record of a completed sale. Only the identifier
// is required by the terminal; the rest is echoed back when present.
type Transaction struct {
	ID            int64         `json:"id"`
	TotalAmount   float64       `json:"total_amount,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
}

package checkout

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty, nothing to checkout")
	ErrCheckoutInFlight     = errors.New("a checkout is already in progress")
	ErrInvalidPaymentMethod = errors.New("payment method must be cash or card")
)

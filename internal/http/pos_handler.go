// Package http adapts UI events (scans, clicks, payments) into calls on the
// cart engine. The UI owns all presentation; this layer owns none of the
// transaction logic.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Shyam-2315/Grocery-Store/internal/cart"
	"github.com/Shyam-2315/Grocery-Store/internal/catalog"
	"github.com/Shyam-2315/Grocery-Store/internal/checkout"
	"github.com/Shyam-2315/Grocery-Store/internal/domain"
	"github.com/Shyam-2315/Grocery-Store/internal/ledger"
	"github.com/Shyam-2315/Grocery-Store/internal/pricing"
	"github.com/Shyam-2315/Grocery-Store/internal/scan"
	"github.com/Shyam-2315/Grocery-Store/pkg/metrics"
)

type PosHandler struct {
	catalog     *catalog.Cache
	cart        *cart.Store
	coordinator *checkout.Coordinator
	metrics     *metrics.TerminalMetrics
	taxRate     float64
	logger      *slog.Logger
}

func NewPosHandler(
	cache *catalog.Cache,
	store *cart.Store,
	coordinator *checkout.Coordinator,
	m *metrics.TerminalMetrics,
	taxRate float64,
	logger *slog.Logger,
) *PosHandler {
	return &PosHandler{
		catalog:     cache,
		cart:        store,
		coordinator: coordinator,
		metrics:     m,
		taxRate:     taxRate,
		logger:      logger,
	}
}

type ScanRequestDTO struct {
	Token string `json:"token"`
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type AdjustQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type CheckoutRequestDTO struct {
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
}

type CheckoutResponseDTO struct {
	TransactionID int64         `json:"transaction_id"`
	Totals        domain.Totals `json:"totals"`
}

type LineView struct {
	domain.CartLine
	LineTotal float64 `json:"line_total"`
}

type CartView struct {
	Items  []LineView    `json:"items"`
	Totals domain.Totals `json:"totals"`
}

type ProductView struct {
	domain.Product
	LowStock bool `json:"low_stock"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Scan resolves a scanner/search token and adds the matched product to the
// cart. A miss leaves the cart untouched.
func (h *PosHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Token == "" {
		respondError(w, http.StatusBadRequest, "invalid_token", "token must not be empty")
		return
	}

	product, err := scan.Resolve(req.Token, h.catalog.All())
	if err != nil {
		h.metrics.Scans.WithLabelValues("not_found").Inc()
		respondError(w, http.StatusNotFound, "product_not_found", "product not found")
		return
	}

	h.metrics.Scans.WithLabelValues("matched").Inc()
	h.cart.AddOrIncrement(product)
	respondJSON(w, http.StatusCreated, h.cartView())
}

// ListProducts returns the cached catalog snapshot.
func (h *PosHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, productViews(h.catalog.All()))
}

// SearchProducts does the free-text, case-insensitive substring search over
// cached product names.
func (h *PosHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	respondJSON(w, http.StatusOK, productViews(h.catalog.SearchByName(q)))
}

// RefreshCatalog replaces the cached snapshot from the backend. On failure
// the previous snapshot keeps serving and the error is surfaced as a
// warning-grade response.
func (h *PosHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	credential := credentialFromContext(r.Context())
	if credential == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing bearer credential")
		return
	}

	if err := h.catalog.Refresh(r.Context(), credential); err != nil {
		h.metrics.CatalogRefreshes.WithLabelValues("error").Inc()
		h.logger.Warn("catalog refresh failed", "error", err)

		var apiErr *ledger.APIError
		if errors.As(err, &apiErr) {
			respondError(w, http.StatusBadGateway, "catalog_refresh_failed", apiErr.Detail)
			return
		}
		respondError(w, http.StatusBadGateway, "catalog_refresh_failed", "inventory service unreachable")
		return
	}

	h.metrics.CatalogRefreshes.WithLabelValues("ok").Inc()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"products":   len(h.catalog.All()),
		"fetched_at": h.catalog.FetchedAt().Format(time.RFC3339),
	})
}

// GetCart returns the current sale with derived totals.
func (h *PosHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartView())
}

// AddItem adds a product by id, the search-result click path on the POS page.
func (h *PosHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, ok := h.catalog.FindByID(req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "product_not_found", "product not found")
		return
	}

	h.cart.AddOrIncrement(product)
	respondJSON(w, http.StatusCreated, h.cartView())
}

// AdjustQuantity applies a +/- delta to a line, clamped to a minimum of one.
func (h *PosHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req AdjustQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Delta == 0 {
		respondError(w, http.StatusBadRequest, "invalid_delta", "delta must not be zero")
		return
	}

	if err := h.cart.AdjustQuantity(productID, req.Delta); err != nil {
		respondError(w, http.StatusNotFound, "line_not_found", "product is not in the cart")
		return
	}
	respondJSON(w, http.StatusOK, h.cartView())
}

// RemoveItem deletes a line outright.
func (h *PosHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	if err := h.cart.Remove(productID); err != nil {
		respondError(w, http.StatusNotFound, "line_not_found", "product is not in the cart")
		return
	}
	respondJSON(w, http.StatusOK, h.cartView())
}

// ClearCart cancels the sale.
func (h *PosHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	respondJSON(w, http.StatusOK, h.cartView())
}

// Checkout submits the cart to the ledger.
func (h *PosHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	credential := credentialFromContext(r.Context())
	if credential == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing bearer credential")
		return
	}

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Totals are computed before submission; the cart is cleared on success.
	totals := pricing.ComputeTotals(h.cart.Snapshot(), h.taxRate)

	start := time.Now()
	tx, err := h.coordinator.Checkout(r.Context(), credential, req.PaymentMethod)
	h.metrics.CheckoutSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		h.respondCheckoutError(w, err)
		return
	}

	h.metrics.Checkouts.WithLabelValues("completed").Inc()
	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		TransactionID: tx.ID,
		Totals:        totals,
	})
}

func (h *PosHandler) respondCheckoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
	case errors.Is(err, checkout.ErrInvalidPaymentMethod):
		respondError(w, http.StatusBadRequest, "invalid_payment_method", err.Error())
	case errors.Is(err, checkout.ErrCheckoutInFlight):
		respondError(w, http.StatusConflict, "checkout_in_flight", err.Error())
	default:
		var apiErr *ledger.APIError
		if errors.As(err, &apiErr) {
			h.metrics.Checkouts.WithLabelValues("rejected").Inc()
			respondError(w, http.StatusUnprocessableEntity, "checkout_rejected", apiErr.Detail)
			return
		}
		h.metrics.Checkouts.WithLabelValues("failed").Inc()
		h.logger.Error("checkout transport failure", "error", err)
		respondError(w, http.StatusBadGateway, "ledger_unreachable", "transaction service unreachable")
	}
}

func (h *PosHandler) cartView() CartView {
	lines := h.cart.Snapshot()
	items := make([]LineView, len(lines))
	for i, line := range lines {
		items[i] = LineView{CartLine: line, LineTotal: pricing.LineTotal(line)}
	}
	return CartView{
		Items:  items,
		Totals: pricing.ComputeTotals(lines, h.taxRate),
	}
}

func productViews(products []domain.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = ProductView{Product: p, LowStock: p.LowStock()}
	}
	return views
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "product_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return 0, false
	}
	return id, true
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// Package ledger is the HTTP client for the remote GroceryPOS backend, which
// owns the product catalog and the transaction ledger.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Shyam-2315/Grocery-Store/internal/domain"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	productsPath     = "/api/v1/products"
	transactionsPath = "/api/v1/transactions/create"
)

// APIError is a structured rejection from the backend. Detail carries the
// server-supplied, human-readable reason and is surfaced to the operator
// verbatim.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// Client talks to the backend over JSON/HTTP. The bearer credential is
// passed explicitly on every call; the client never holds session state.
// Catalog fetches run behind a circuit breaker so a flapping backend fails
// fast while the terminal keeps selling from its cached snapshot.
// Transaction posts bypass the breaker: a non-empty checkout must always
// reach the network.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]domain.Product]
}

// NewClient creates a ledger client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	breaker := gobreaker.NewCircuitBreaker[[]domain.Product](gobreaker.Settings{
		Name: "catalog-fetch",
	})

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: breaker,
	}
}

// FetchProducts retrieves the full product catalog for the credential's store.
func (c *Client) FetchProducts(ctx context.Context, credential string) ([]domain.Product, error) {
	return c.breaker.Execute(func() ([]domain.Product, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+productsPath, nil)
		if err != nil {
			return nil, fmt.Errorf("build products request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+credential)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("products request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, decodeAPIError(resp, "failed to fetch products")
		}

		var products []domain.Product
		if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
			return nil, fmt.Errorf("decode products response: %w", err)
		}
		return products, nil
	})
}

// CreateTransaction submits a finalized cart to the ledger. Every call
// carries a fresh idempotency key so an operator retry of a failed submit
// cannot double-record server-side if the first attempt actually landed.
func (c *Client) CreateTransaction(ctx context.Context, credential string, checkout domain.CheckoutRequest) (*domain.Transaction, error) {
	payload, err := json.Marshal(checkout)
	if err != nil {
		return nil, fmt.Errorf("marshal checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+transactionsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build transaction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transaction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp, "transaction failed")
	}

	var tx domain.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		return nil, fmt.Errorf("decode transaction response: %w", err)
	}
	return &tx, nil
}

// decodeAPIError reads a backend error body of the form {"detail": "..."}
// and falls back to the given generic reason when no detail is supplied.
func decodeAPIError(resp *http.Response, fallback string) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: fallback}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Detail != "" {
		apiErr.Detail = e.Detail
	}
	return apiErr
}

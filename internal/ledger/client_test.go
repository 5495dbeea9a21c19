package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Shyam-2315/Grocery-Store/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProducts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode([]domain.Product{
			{ID: 1, Name: "Cola", Barcode: "001", SellingPrice: 1.50, StockQuantity: 10},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	products, err := client.FetchProducts(context.Background(), "secret-token")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Cola", products[0].Name)
	assert.Equal(t, 1.50, products[0].SellingPrice)
}

func TestFetchProducts_AuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchProducts(context.Background(), "expired")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Could not validate credentials", apiErr.Detail)
}

func TestCreateTransaction_Success(t *testing.T) {
	var received domain.CheckoutRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/transactions/create", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(domain.Transaction{ID: 77, TotalAmount: 3.15})
	}))
	defer srv.Close()

	checkout := domain.CheckoutRequest{
		Items: []domain.CartLine{
			{ProductID: 1, ProductName: "Cola", Quantity: 2, UnitPrice: 1.50},
		},
		PaymentMethod: domain.PaymentCash,
	}

	client := NewClient(srv.URL, 5*time.Second)
	tx, err := client.CreateTransaction(context.Background(), "secret-token", checkout)

	require.NoError(t, err)
	assert.Equal(t, int64(77), tx.ID)

	require.Len(t, received.Items, 1)
	assert.Equal(t, int64(1), received.Items[0].ProductID)
	assert.Equal(t, "Cola", received.Items[0].ProductName)
	assert.Equal(t, 2, received.Items[0].Quantity)
	assert.Equal(t, domain.PaymentCash, received.PaymentMethod)
}

func TestCreateTransaction_RejectedWithDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "insufficient stock"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.CreateTransaction(context.Background(), "secret-token", domain.CheckoutRequest{
		PaymentMethod: domain.PaymentCard,
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "insufficient stock", apiErr.Error())
}

func TestCreateTransaction_RejectedWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.CreateTransaction(context.Background(), "secret-token", domain.CheckoutRequest{
		PaymentMethod: domain.PaymentCash,
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "transaction failed", apiErr.Detail)
}

func TestCreateTransaction_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, time.Second)
	_, err := client.CreateTransaction(context.Background(), "secret-token", domain.CheckoutRequest{
		PaymentMethod: domain.PaymentCash,
	})

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport errors are not API rejections")
}

func TestCreateTransaction_FreshIdempotencyKeyPerSubmit(t *testing.T) {
	var keys []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		json.NewEncoder(w).Encode(domain.Transaction{ID: 1})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	for i := 0; i < 2; i++ {
		_, err := client.CreateTransaction(context.Background(), "t", domain.CheckoutRequest{PaymentMethod: domain.PaymentCash})
		require.NoError(t, err)
	}

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
}

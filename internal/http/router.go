package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Shyam-2315/Grocery-Store/pkg/metrics"
)

// NewRouter assembles the terminal's local API consumed by the POS UI.
func NewRouter(handler *PosHandler, m *metrics.TerminalMetrics, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(BearerCredentialMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scan", handler.Scan)

		r.Get("/products", handler.ListProducts)
		r.Get("/products/search", handler.SearchProducts)
		r.Post("/catalog/refresh", handler.RefreshCatalog)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", handler.GetCart)
			r.Delete("/", handler.ClearCart)
			r.Post("/items", handler.AddItem)
			r.Patch("/items/{product_id}", handler.AdjustQuantity)
			r.Delete("/items/{product_id}", handler.RemoveItem)
		})

		r.Post("/checkout", handler.Checkout)
	})

	return r
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/catalog/usecase/query"
	"github.com/aykah/storefront/internal/catalog/view"
	sessionHTTP "github.com/aykah/storefront/internal/session/delivery/http"
	"github.com/aykah/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	listHandler       *query.ListProductsHandler
	getHandler        *query.GetProductHandler
	categoriesHandler *query.ListCategoriesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	listHandler *query.ListProductsHandler,
	getHandler *query.GetProductHandler,
	categoriesHandler *query.ListCategoriesHandler,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CatalogHandler{
		listHandler:       listHandler,
		getHandler:        getHandler,
		categoriesHandler: categoriesHandler,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
	}
}

// Response is the uniform JSON envelope of the storefront API
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers catalog routes on the router
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", sessionHTTP.SessionKeyMiddleware(h.ListProducts))).Methods("GET")
	router.HandleFunc("/api/products/{id:[0-9]+}", h.metricsMiddleware("/api/products/{id}", sessionHTTP.SessionKeyMiddleware(h.GetProduct))).Methods("GET")
	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", sessionHTTP.SessionKeyMiddleware(h.ListCategories))).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{
		Category: r.URL.Query().Get("category"),
		Filters:  parseFilters(r),
	}

	result := h.listHandler.Handle(r.Context(), q)
	if err := result.Err(); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   "Failed to load products",
		})
		return
	}

	products, ok := result.Value()
	if !ok {
		respondJSON(w, http.StatusAccepted, Response{
			Success: false,
			Message: "Products are still loading",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoriesHandler.Handle(r.Context(), query.ListCategoriesQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   "Failed to load categories",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    categories,
	})
}

// parseFilters reads the ephemeral view parameters from the query string
func parseFilters(r *http.Request) view.FilterState {
	filters := view.DefaultFilters()
	params := r.URL.Query()

	if v := params.Get("price_min"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filters.PriceRange[0] = min
		}
	}
	if v := params.Get("price_max"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filters.PriceRange[1] = max
		}
	}
	if v := params.Get("rating"); v != "" {
		if rating, err := strconv.Atoi(v); err == nil {
			filters.Rating = rating
		}
	}
	if v := params.Get("in_stock"); v != "" {
		filters.InStock = v == "true" || v == "1"
	}
	filters.SearchQuery = params.Get("search")
	filters.SortBy = view.ParseSortKey(params.Get("sort"))

	return filters.Normalize()
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/orders/domain"
	"github.com/aykah/storefront/internal/orders/usecase/query"
	sessionquery "github.com/aykah/storefront/internal/session/usecase/query"

	sessionHTTP "github.com/aykah/storefront/internal/session/delivery/http"
	"github.com/aykah/storefront/pkg/logger"
)

// OrderHandler handles HTTP requests for the order history
type OrderHandler struct {
	listHandler *query.ListOrdersHandler
	sessions    *sessionquery.CurrentSessionHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(listHandler *query.ListOrdersHandler, sessions *sessionquery.CurrentSessionHandler) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_requests_total",
			Help: "Total number of requests to order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_orders_request_duration_seconds",
			Help:    "Duration of order requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &OrderHandler{
		listHandler:    listHandler,
		sessions:       sessions,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers order routes on the router. Order history is
// only available to signed-in users.
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", sessionHTTP.RequireSession(h.sessions, h.ListOrders))).Methods("GET")
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	session := sessionHTTP.SessionFromContext(r.Context())
	if session == nil || session.User == nil {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Authentication required",
		})
		return
	}

	orders, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{UserID: session.User.ID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("user_id", session.User.ID).Msg("Failed to load order history")

		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrOrdersUnavailable) || errors.Is(err, catalog.ErrCatalogUnavailable) {
			status = http.StatusBadGateway
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   "Failed to load order history",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

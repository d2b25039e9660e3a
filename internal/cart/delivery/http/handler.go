package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aykah/storefront/internal/cart/domain"
	"github.com/aykah/storefront/internal/cart/usecase/command"
	"github.com/aykah/storefront/internal/cart/usecase/query"
	catalog "github.com/aykah/storefront/internal/catalog/domain"
	sessionHTTP "github.com/aykah/storefront/internal/session/delivery/http"
	"github.com/aykah/storefront/kafka"
	"github.com/aykah/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the shopping cart
type CartHandler struct {
	addHandler      *command.AddItemHandler
	removeHandler   *command.RemoveItemHandler
	quantityHandler *command.UpdateQuantityHandler
	clearHandler    *command.ClearCartHandler
	getHandler      *query.GetCartHandler

	kafkaPublisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	cartTotalGauge *prometheus.GaugeVec
}

// NewCartHandler creates a new cart handler. kafkaPublisher may be nil, in
// which case intent events are disabled.
func NewCartHandler(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	quantityHandler *command.UpdateQuantityHandler,
	clearHandler *command.ClearCartHandler,
	getHandler *query.GetCartHandler,
	kafkaPublisher *kafka.Publisher,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_requests_total",
			Help: "Total number of requests to cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_cart_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	cartTotalGauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storefront_cart_items",
			Help: "Number of distinct items in recently mutated carts",
		},
		[]string{"intent"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(cartTotalGauge)

	return &CartHandler{
		addHandler:      addHandler,
		removeHandler:   removeHandler,
		quantityHandler: quantityHandler,
		clearHandler:    clearHandler,
		getHandler:      getHandler,
		kafkaPublisher:  kafkaPublisher,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		cartTotalGauge:  cartTotalGauge,
	}
}

// Response is the uniform JSON envelope of the storefront API
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type cartPayload struct {
	Items []domain.Item `json:"items"`
	Total float64       `json:"total"`
	Count int           `json:"count"`
}

func toPayload(cart *domain.Cart) cartPayload {
	return cartPayload{
		Items: cart.Items(),
		Total: cart.Total(),
		Count: cart.Count(),
	}
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
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers cart routes on the router. Every route is
// session-keyed, anonymous shoppers included.
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", sessionHTTP.SessionKeyMiddleware(h.GetCart))).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", sessionHTTP.SessionKeyMiddleware(h.ClearCart))).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", sessionHTTP.SessionKeyMiddleware(h.AddItem))).Methods("POST")
	router.HandleFunc("/api/cart/items/{id:[0-9]+}", h.metricsMiddleware("/api/cart/items/{id}", sessionHTTP.SessionKeyMiddleware(h.UpdateQuantity))).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{id:[0-9]+}", h.metricsMiddleware("/api/cart/items/{id}", sessionHTTP.SessionKeyMiddleware(h.RemoveItem))).Methods("DELETE")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	q := query.GetCartQuery{SessionKey: sessionHTTP.SessionKeyFromContext(r.Context())}

	cart, err := h.getHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    toPayload(cart),
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint `json:"product_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	sessionKey := sessionHTTP.SessionKeyFromContext(r.Context())
	cmd := command.AddItemCommand{
		SessionKey: sessionKey,
		ProductID:  req.ProductID,
	}

	cart, err := h.addHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", req.ProductID).Msg("Failed to add cart item")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   "Failed to add item to cart",
		})
		return
	}

	h.cartTotalGauge.WithLabelValues("add").Set(float64(cart.Len()))
	h.publishEvent(r, kafka.IntentEvent{
		EventType:  kafka.EventTypeCartItemAdded,
		SessionKey: sessionKey,
		ProductID:  req.ProductID,
		Quantity:   cart.Quantity(req.ProductID),
		CartTotal:  cart.Total(),
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    toPayload(cart),
	})
}

// UpdateQuantity handles PATCH /api/cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateQuantityCommand{
		SessionKey: sessionHTTP.SessionKeyFromContext(r.Context()),
		ProductID:  id,
		Quantity:   req.Quantity,
	}

	cart, err := h.quantityHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to update quantity")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   "Failed to update quantity",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated",
		Data:    toPayload(cart),
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	sessionKey := sessionHTTP.SessionKeyFromContext(r.Context())
	cmd := command.RemoveItemCommand{
		SessionKey: sessionKey,
		ProductID:  id,
	}

	cart, err := h.removeHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to remove cart item")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   "Failed to remove item",
		})
		return
	}

	h.cartTotalGauge.WithLabelValues("remove").Set(float64(cart.Len()))
	h.publishEvent(r, kafka.IntentEvent{
		EventType:  kafka.EventTypeCartItemRemoved,
		SessionKey: sessionKey,
		ProductID:  id,
		CartTotal:  cart.Total(),
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed",
		Data:    toPayload(cart),
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionKey := sessionHTTP.SessionKeyFromContext(r.Context())
	cmd := command.ClearCartCommand{SessionKey: sessionKey}

	if err := h.clearHandler.Handle(r.Context(), cmd); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear cart",
		})
		return
	}

	h.publishEvent(r, kafka.IntentEvent{
		EventType:  kafka.EventTypeCartCleared,
		SessionKey: sessionKey,
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// publishEvent sends an intent event when a publisher is configured. A
// publish failure never fails the mutation.
func (h *CartHandler) publishEvent(r *http.Request, event kafka.IntentEvent) {
	if h.kafkaPublisher == nil {
		return
	}
	if err := h.kafkaPublisher.Publish(r.Context(), kafka.TopicCartEvents, event); err != nil {
		logger.Error(r.Context()).
			Err(err).
			Str("event_type", event.EventType).
			Msg("Failed to publish cart event")
	}
}

func productIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return 0, false
	}
	return uint(id), true
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrCatalogUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	cartcommand "github.com/aykah/storefront/internal/cart/usecase/command"
	catalog "github.com/aykah/storefront/internal/catalog/domain"
	sessionHTTP "github.com/aykah/storefront/internal/session/delivery/http"
	"github.com/aykah/storefront/internal/wishlist/usecase/command"
	"github.com/aykah/storefront/internal/wishlist/usecase/query"
	"github.com/aykah/storefront/kafka"
	"github.com/aykah/storefront/pkg/logger"
)

// WishlistHandler handles HTTP requests for saved products
type WishlistHandler struct {
	addHandler    *command.AddProductHandler
	removeHandler *command.RemoveProductHandler
	clearHandler  *command.ClearWishlistHandler
	getHandler    *query.GetWishlistHandler
	cartAdd       *cartcommand.AddItemHandler

	kafkaPublisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewWishlistHandler creates a new wishlist handler. kafkaPublisher may be
// nil, in which case intent events are disabled.
func NewWishlistHandler(
	addHandler *command.AddProductHandler,
	removeHandler *command.RemoveProductHandler,
	clearHandler *command.ClearWishlistHandler,
	getHandler *query.GetWishlistHandler,
	cartAdd *cartcommand.AddItemHandler,
	kafkaPublisher *kafka.Publisher,
) *WishlistHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_wishlist_requests_total",
			Help: "Total number of requests to wishlist endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_wishlist_request_duration_seconds",
			Help:    "Duration of wishlist requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &WishlistHandler{
		addHandler:     addHandler,
		removeHandler:  removeHandler,
		clearHandler:   clearHandler,
		getHandler:     getHandler,
		cartAdd:        cartAdd,
		kafkaPublisher: kafkaPublisher,
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

type wishlistPayload struct {
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
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
func (h *WishlistHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers wishlist routes on the router
func (h *WishlistHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/wishlist", h.metricsMiddleware("/api/wishlist", sessionHTTP.SessionKeyMiddleware(h.GetWishlist))).Methods("GET")
	router.HandleFunc("/api/wishlist", h.metricsMiddleware("/api/wishlist", sessionHTTP.SessionKeyMiddleware(h.ClearWishlist))).Methods("DELETE")
	router.HandleFunc("/api/wishlist/items", h.metricsMiddleware("/api/wishlist/items", sessionHTTP.SessionKeyMiddleware(h.AddProduct))).Methods("POST")
	router.HandleFunc("/api/wishlist/items/{id:[0-9]+}", h.metricsMiddleware("/api/wishlist/items/{id}", sessionHTTP.SessionKeyMiddleware(h.RemoveProduct))).Methods("DELETE")
	router.HandleFunc("/api/wishlist/items/{id:[0-9]+}/move-to-cart", h.metricsMiddleware("/api/wishlist/items/{id}/move-to-cart", sessionHTTP.SessionKeyMiddleware(h.MoveToCart))).Methods("POST")
}

// GetWishlist handles GET /api/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	q := query.GetWishlistQuery{SessionKey: sessionHTTP.SessionKeyFromContext(r.Context())}

	wishlist, err := h.getHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load wishlist",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: wishlistPayload{
			Products: wishlist.Products(),
			Count:    wishlist.Len(),
		},
	})
}

// AddProduct handles POST /api/wishlist/items
func (h *WishlistHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
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
	cmd := command.AddProductCommand{
		SessionKey: sessionKey,
		ProductID:  req.ProductID,
	}

	wishlist, err := h.addHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", req.ProductID).Msg("Failed to save product")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   "Failed to save product",
		})
		return
	}

	h.publishEvent(r, kafka.IntentEvent{
		EventType:  kafka.EventTypeWishlistItemAdded,
		SessionKey: sessionKey,
		ProductID:  req.ProductID,
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product saved",
		Data: wishlistPayload{
			Products: wishlist.Products(),
			Count:    wishlist.Len(),
		},
	})
}

// RemoveProduct handles DELETE /api/wishlist/items/{id}
func (h *WishlistHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	sessionKey := sessionHTTP.SessionKeyFromContext(r.Context())
	cmd := command.RemoveProductCommand{
		SessionKey: sessionKey,
		ProductID:  id,
	}

	wishlist, err := h.removeHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to remove saved product")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to remove product",
		})
		return
	}

	h.publishEvent(r, kafka.IntentEvent{
		EventType:  kafka.EventTypeWishlistItemRemoved,
		SessionKey: sessionKey,
		ProductID:  id,
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product removed",
		Data: wishlistPayload{
			Products: wishlist.Products(),
			Count:    wishlist.Len(),
		},
	})
}

// MoveToCart handles POST /api/wishlist/items/{id}/move-to-cart. The product
// is added to the cart first; it leaves the wishlist only if that succeeds.
func (h *WishlistHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	sessionKey := sessionHTTP.SessionKeyFromContext(r.Context())

	cart, err := h.cartAdd.Handle(r.Context(), cartcommand.AddItemCommand{
		SessionKey: sessionKey,
		ProductID:  id,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to move product to cart")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   "Failed to move product to cart",
		})
		return
	}

	wishlist, err := h.removeHandler.Handle(r.Context(), command.RemoveProductCommand{
		SessionKey: sessionKey,
		ProductID:  id,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to remove moved product from wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Product added to cart but could not be removed from wishlist",
		})
		return
	}

	h.publishEvent(r, kafka.IntentEvent{
		EventType:  kafka.EventTypeCartItemAdded,
		SessionKey: sessionKey,
		ProductID:  id,
		Quantity:   cart.Quantity(id),
		CartTotal:  cart.Total(),
	})
	h.publishEvent(r, kafka.IntentEvent{
		EventType:  kafka.EventTypeWishlistItemRemoved,
		SessionKey: sessionKey,
		ProductID:  id,
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product moved to cart",
		Data: wishlistPayload{
			Products: wishlist.Products(),
			Count:    wishlist.Len(),
		},
	})
}

// ClearWishlist handles DELETE /api/wishlist
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	sessionKey := sessionHTTP.SessionKeyFromContext(r.Context())
	cmd := command.ClearWishlistCommand{SessionKey: sessionKey}

	if err := h.clearHandler.Handle(r.Context(), cmd); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear wishlist",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Wishlist cleared",
	})
}

// publishEvent sends an intent event when a publisher is configured. A
// publish failure never fails the mutation.
func (h *WishlistHandler) publishEvent(r *http.Request, event kafka.IntentEvent) {
	if h.kafkaPublisher == nil {
		return
	}
	topic := kafka.TopicWishlistEvents
	if event.EventType == kafka.EventTypeCartItemAdded {
		topic = kafka.TopicCartEvents
	}
	if err := h.kafkaPublisher.Publish(r.Context(), topic, event); err != nil {
		logger.Error(r.Context()).
			Err(err).
			Str("event_type", event.EventType).
			Msg("Failed to publish wishlist event")
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

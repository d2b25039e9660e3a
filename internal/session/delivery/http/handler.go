package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aykah/storefront/internal/session/domain"
	"github.com/aykah/storefront/internal/session/usecase/command"
	"github.com/aykah/storefront/internal/session/usecase/query"
	"github.com/aykah/storefront/kafka"
	"github.com/aykah/storefront/pkg/logger"
)

// SessionHandler handles HTTP requests for authentication and sessions
type SessionHandler struct {
	loginHandler    *command.LoginHandler
	logoutHandler   *command.LogoutHandler
	registerHandler *command.RegisterHandler
	currentHandler  *query.CurrentSessionHandler
	kafkaPublisher  *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewSessionHandler creates a new session handler. kafkaPublisher may be nil
func NewSessionHandler(
	loginHandler *command.LoginHandler,
	logoutHandler *command.LogoutHandler,
	registerHandler *command.RegisterHandler,
	currentHandler *query.CurrentSessionHandler,
	kafkaPublisher *kafka.Publisher,
) *SessionHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_session_requests_total",
			Help: "Total number of requests to session endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_session_request_duration_seconds",
			Help:    "Duration of session requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &SessionHandler{
		loginHandler:    loginHandler,
		logoutHandler:   logoutHandler,
		registerHandler: registerHandler,
		currentHandler:  currentHandler,
		kafkaPublisher:  kafkaPublisher,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
	}
}

// CurrentSessionHandler exposes the session resolver for other domains'
// middleware
func (h *SessionHandler) CurrentSessionHandler() *query.CurrentSessionHandler {
	return h.currentHandler
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
func (h *SessionHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers session routes on the router
func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/login", h.metricsMiddleware("/api/auth/login", SessionKeyMiddleware(h.Login))).Methods("POST")
	router.HandleFunc("/api/auth/register", h.metricsMiddleware("/api/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/api/auth/logout", h.metricsMiddleware("/api/auth/logout", SessionKeyMiddleware(h.Logout))).Methods("POST")
	router.HandleFunc("/api/auth/me", h.metricsMiddleware("/api/auth/me", RequireSession(h.currentHandler, h.Me))).Methods("GET")
}

// Login handles POST /api/auth/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.LoginCommand{
		SessionKey: SessionKeyFromContext(r.Context()),
		Email:      req.Email,
		Password:   req.Password,
	}

	session, err := h.loginHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Login failed")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	event := kafka.IntentEvent{
		EventType:  kafka.EventTypeSessionLogin,
		SessionKey: cmd.SessionKey,
	}
	if session.User != nil {
		event.UserID = session.User.ID
	}
	h.publishEvent(r, event)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Signed in",
		Data:    session,
	})
}

// publishEvent sends an intent event when a publisher is configured. A
// publish failure never fails the sign-in.
func (h *SessionHandler) publishEvent(r *http.Request, event kafka.IntentEvent) {
	if h.kafkaPublisher == nil {
		return
	}
	if err := h.kafkaPublisher.Publish(r.Context(), kafka.TopicSessionEvents, event); err != nil {
		logger.Error(r.Context()).
			Err(err).
			Str("event_type", event.EventType).
			Msg("Failed to publish session event")
	}
}

// Register handles POST /api/auth/register
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string `json:"email"`
		Username  string `json:"username"`
		Password  string `json:"password"`
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.RegisterCommand{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	user, err := h.registerHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Registration failed")
		respondJSON(w, statusForError(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Account created",
		Data:    user,
	})
}

// Logout handles POST /api/auth/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cmd := command.LogoutCommand{SessionKey: SessionKeyFromContext(r.Context())}

	if err := h.logoutHandler.Handle(r.Context(), cmd); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Logout failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to sign out",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Signed out",
	})
}

// Me handles GET /api/auth/me
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    session,
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAuthUnavailable):
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

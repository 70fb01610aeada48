package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pcshop/storefront/internal/cart/domain"
	"github.com/pcshop/storefront/internal/cart/usecase/command"
	"github.com/pcshop/storefront/internal/cart/usecase/query"
	catalog "github.com/pcshop/storefront/internal/catalog/domain"
	userhttp "github.com/pcshop/storefront/internal/user/delivery/http"
	"github.com/pcshop/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the shopping cart using CQRS pattern
type CartHandler struct {
	// Command handlers
	addHandler    *command.AddItemHandler
	updateHandler *command.UpdateItemHandler
	removeHandler *command.RemoveItemHandler

	// Query handlers
	getCartHandler *query.GetCartHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCartHandler creates a new cart handler with CQRS pattern (manual DI for backwards compatibility)
func NewCartHandler(carts domain.CartRepository, catalogRepo catalog.CatalogRepository) *CartHandler {
	return newCartHandler(
		command.NewAddItemHandler(carts, catalogRepo),
		command.NewUpdateItemHandler(carts),
		command.NewRemoveItemHandler(carts),
		query.NewGetCartHandler(carts),
	)
}

// NewCartHandlerWithDI creates a new cart handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewCartHandlerWithDI(
	addHandler *command.AddItemHandler,
	updateHandler *command.UpdateItemHandler,
	removeHandler *command.RemoveItemHandler,
	getCartHandler *query.GetCartHandler,
) *CartHandler {
	return newCartHandler(addHandler, updateHandler, removeHandler, getCartHandler)
}

// newCartHandler is the internal constructor used by both manual and Wire DI
func newCartHandler(
	addHandler *command.AddItemHandler,
	updateHandler *command.UpdateItemHandler,
	removeHandler *command.RemoveItemHandler,
	getCartHandler *query.GetCartHandler,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_requests_total",
			Help: "Total number of requests to cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CartHandler{
		addHandler:     addHandler,
		updateHandler:  updateHandler,
		removeHandler:  removeHandler,
		getCartHandler: getCartHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
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

// RegisterRoutes registers all cart routes. Every route requires a signed-in user.
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", userhttp.AuthMiddleware(h.GetCart))).Methods("GET")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", userhttp.AuthMiddleware(h.AddItem))).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", userhttp.AuthMiddleware(h.UpdateItem))).Methods("PUT")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", userhttp.AuthMiddleware(h.RemoveItem))).Methods("DELETE")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	view, err := h.getCartHandler.Handle(query.GetCartQuery{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to load cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  *int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	// Quantity defaults to 1 only when omitted; an explicit 0 is rejected
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	result, err := h.addHandler.Handle(command.AddItemCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		h.respondCartError(w, err, "Failed to add item to cart")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: result.Message,
		Data:    result,
	})
}

// UpdateItem handles PUT /api/cart/items/{id}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	vars := mux.Vars(r)
	itemID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
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

	result, err := h.updateHandler.Handle(command.UpdateItemCommand{
		UserID:   userID,
		ItemID:   uint(itemID),
		Quantity: req.Quantity,
	})
	if err != nil {
		h.respondCartError(w, err, "Failed to update cart item")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	vars := mux.Vars(r)
	itemID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	result, err := h.removeHandler.Handle(command.RemoveItemCommand{
		UserID: userID,
		ItemID: uint(itemID),
	})
	if err != nil {
		h.respondCartError(w, err, "Failed to remove cart item")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: result.Message,
		Data:    result,
	})
}

// respondCartError maps domain errors to HTTP statuses. Unexpected errors are
// logged with their cause but reported generically.
func (h *CartHandler) respondCartError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Cart item not found"})
	case errors.Is(err, catalog.ErrProductNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, domain.ErrInvalidQuantity):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	default:
		logger.Logger.Error().Err(err).Msg(fallback)
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: fallback})
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

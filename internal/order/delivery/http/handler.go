package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	cart "github.com/pcshop/storefront/internal/cart/domain"
	"github.com/pcshop/storefront/internal/order/domain"
	"github.com/pcshop/storefront/internal/order/usecase/command"
	"github.com/pcshop/storefront/internal/order/usecase/query"
	user "github.com/pcshop/storefront/internal/user/domain"
	userhttp "github.com/pcshop/storefront/internal/user/delivery/http"
	"github.com/pcshop/storefront/kafka"
	"github.com/pcshop/storefront/pkg/logger"
)

// OrderHandler handles HTTP requests for checkout and orders using CQRS pattern
type OrderHandler struct {
	// Command handlers
	placeHandler         *command.PlaceOrderHandler
	updateStatusHandler  *command.UpdateStatusHandler
	updatePaymentHandler *command.UpdatePaymentStatusHandler

	// Query handlers
	getOrderHandler      *query.GetOrderHandler
	listOrdersHandler    *query.ListOrdersHandler
	listAllOrdersHandler *query.ListAllOrdersHandler
	getCheckoutHandler   *query.GetCheckoutHandler

	kafkaPublisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	ordersPlaced   prometheus.Counter
}

// NewOrderHandler creates a new order handler with CQRS pattern (manual DI for backwards compatibility)
func NewOrderHandler(
	orders domain.OrderRepository,
	carts cart.CartRepository,
	users user.UserRepository,
	kafkaPublisher *kafka.Publisher,
) *OrderHandler {
	return newOrderHandler(
		command.NewPlaceOrderHandler(orders),
		command.NewUpdateStatusHandler(orders),
		command.NewUpdatePaymentStatusHandler(orders),
		query.NewGetOrderHandler(orders),
		query.NewListOrdersHandler(orders),
		query.NewListAllOrdersHandler(orders),
		query.NewGetCheckoutHandler(carts, users),
		kafkaPublisher,
	)
}

// NewOrderHandlerWithDI creates a new order handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewOrderHandlerWithDI(
	placeHandler *command.PlaceOrderHandler,
	updateStatusHandler *command.UpdateStatusHandler,
	updatePaymentHandler *command.UpdatePaymentStatusHandler,
	getOrderHandler *query.GetOrderHandler,
	listOrdersHandler *query.ListOrdersHandler,
	listAllOrdersHandler *query.ListAllOrdersHandler,
	getCheckoutHandler *query.GetCheckoutHandler,
	kafkaPublisher *kafka.Publisher,
) *OrderHandler {
	return newOrderHandler(
		placeHandler, updateStatusHandler, updatePaymentHandler,
		getOrderHandler, listOrdersHandler, listAllOrdersHandler, getCheckoutHandler,
		kafkaPublisher,
	)
}

// newOrderHandler is the internal constructor used by both manual and Wire DI
func newOrderHandler(
	placeHandler *command.PlaceOrderHandler,
	updateStatusHandler *command.UpdateStatusHandler,
	updatePaymentHandler *command.UpdatePaymentStatusHandler,
	getOrderHandler *query.GetOrderHandler,
	listOrdersHandler *query.ListOrdersHandler,
	listAllOrdersHandler *query.ListAllOrdersHandler,
	getCheckoutHandler *query.GetCheckoutHandler,
	kafkaPublisher *kafka.Publisher,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_requests_total",
			Help: "Total number of requests to order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_request_duration_seconds",
			Help:    "Duration of order requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Total number of successfully placed orders",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersPlaced)

	return &OrderHandler{
		placeHandler:         placeHandler,
		updateStatusHandler:  updateStatusHandler,
		updatePaymentHandler: updatePaymentHandler,
		getOrderHandler:      getOrderHandler,
		listOrdersHandler:    listOrdersHandler,
		listAllOrdersHandler: listAllOrdersHandler,
		getCheckoutHandler:   getCheckoutHandler,
		kafkaPublisher:       kafkaPublisher,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
		ordersPlaced:         ordersPlaced,
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

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	// Authenticated routes
	router.HandleFunc("/api/checkout", h.metricsMiddleware("/api/checkout", userhttp.AuthMiddleware(h.GetCheckout))).Methods("GET")
	router.HandleFunc("/api/checkout", h.metricsMiddleware("/api/checkout", userhttp.AuthMiddleware(h.PlaceOrder))).Methods("POST")
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", userhttp.AuthMiddleware(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", userhttp.AuthMiddleware(h.GetOrder))).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/admin/orders", h.metricsMiddleware("/api/admin/orders", userhttp.AdminMiddleware(h.ListAllOrders))).Methods("GET")
	router.HandleFunc("/api/admin/orders/{id}/status", h.metricsMiddleware("/api/admin/orders/{id}/status", userhttp.AdminMiddleware(h.UpdateStatus))).Methods("PATCH")
	router.HandleFunc("/api/admin/orders/{id}/payment", h.metricsMiddleware("/api/admin/orders/{id}/payment", userhttp.AdminMiddleware(h.UpdatePaymentStatus))).Methods("PATCH")
}

// GetCheckout handles GET /api/checkout
func (h *OrderHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	view, err := h.getCheckoutHandler.Handle(query.GetCheckoutQuery{UserID: userID})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "Your cart is empty",
			})
			return
		}
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to prepare checkout")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to prepare checkout",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// PlaceOrder handles POST /api/checkout
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	var req struct {
		FullName      string `json:"full_name"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
		City          string `json:"city"`
		State         string `json:"state"`
		Pincode       string `json:"pincode"`
		PaymentMethod string `json:"payment_method"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	order, err := h.placeHandler.Handle(command.PlaceOrderCommand{
		UserID:        userID,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		// Field validation keeps 400 with per-field messages; everything
		// unexpected falls through to the generic 500 path.
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "Please correct the highlighted fields",
				Data:    map[string]interface{}{"fields": vErr.Fields},
			})
			return
		}
		h.respondOrderError(w, err)
		return
	}

	h.ordersPlaced.Inc()

	// Publish order placed event to Kafka (with tracing)
	if h.kafkaPublisher != nil {
		event := kafka.OrderPlacedEvent{
			OrderID:       order.ID,
			UserID:        order.UserID,
			TotalPrice:    order.TotalPrice,
			PaymentMethod: order.PaymentMethod,
		}
		for i := range order.Items {
			event.Items = append(event.Items, kafka.OrderEventItem{
				ProductID:   order.Items[i].ProductID,
				ProductName: order.Items[i].ProductName,
				Price:       order.Items[i].Price,
				Quantity:    order.Items[i].Quantity,
			})
		}

		if err := h.kafkaPublisher.PublishOrderPlaced(r.Context(), event); err != nil {
			logger.Logger.Error().
				Err(err).
				Uint("order_id", order.ID).
				Msg("Failed to publish order placed event")
			// The order is already committed, don't fail the request
		}
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Your order has been placed successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	vars := mux.Vars(r)
	orderID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return
	}

	order, err := h.getOrderHandler.Handle(query.GetOrderQuery{OrderID: uint(orderID), UserID: userID})
	if err != nil {
		h.respondOrderError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	orders, err := h.listOrdersHandler.Handle(query.ListOrdersQuery{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list orders",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

// ListAllOrders handles GET /api/admin/orders
func (h *OrderHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.listAllOrdersHandler.Handle(query.ListAllOrdersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list all orders")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list orders",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

// UpdateStatus handles PATCH /api/admin/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return
	}

	var req struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.updateStatusHandler.Handle(command.UpdateStatusCommand{
		OrderID: uint(orderID),
		Status:  req.Status,
	}); err != nil {
		h.respondOrderError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order status updated successfully",
	})
}

// UpdatePaymentStatus handles PATCH /api/admin/orders/{id}/payment
func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return
	}

	var req struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.updatePaymentHandler.Handle(command.UpdatePaymentStatusCommand{
		OrderID: uint(orderID),
		Status:  req.Status,
	}); err != nil {
		h.respondOrderError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Payment status updated successfully",
	})
}

// respondOrderError maps domain errors to HTTP statuses
func (h *OrderHandler) respondOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
	case errors.Is(err, domain.ErrEmptyCart):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Your cart is empty"})
	case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrInvalidStatus):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	default:
		logger.Logger.Error().Err(err).Msg("Order request failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Request failed"})
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

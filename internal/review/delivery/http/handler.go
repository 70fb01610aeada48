package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pcshop/storefront/internal/review/domain"
	"github.com/pcshop/storefront/internal/review/usecase/command"
	"github.com/pcshop/storefront/internal/review/usecase/query"
	userhttp "github.com/pcshop/storefront/internal/user/delivery/http"
	"github.com/pcshop/storefront/pkg/logger"
)

// ReviewHandler handles HTTP requests for product reviews using CQRS pattern
type ReviewHandler struct {
	// Command handlers
	upsertReviewHandler *command.UpsertReviewHandler

	// Query handlers
	getRatingHandler   *query.GetRatingHandler
	listReviewsHandler *query.ListReviewsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewReviewHandler creates a new review handler with CQRS pattern (manual DI for backwards compatibility)
func NewReviewHandler(repo domain.ReviewRepository) *ReviewHandler {
	return newReviewHandler(
		command.NewUpsertReviewHandler(repo),
		query.NewGetRatingHandler(repo),
		query.NewListReviewsHandler(repo),
	)
}

// NewReviewHandlerWithDI creates a new review handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewReviewHandlerWithDI(
	upsertReviewHandler *command.UpsertReviewHandler,
	getRatingHandler *query.GetRatingHandler,
	listReviewsHandler *query.ListReviewsHandler,
) *ReviewHandler {
	return newReviewHandler(upsertReviewHandler, getRatingHandler, listReviewsHandler)
}

// newReviewHandler is the internal constructor used by both manual and Wire DI
func newReviewHandler(
	upsertReviewHandler *command.UpsertReviewHandler,
	getRatingHandler *query.GetRatingHandler,
	listReviewsHandler *query.ListReviewsHandler,
) *ReviewHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_requests_total",
			Help: "Total number of requests to review endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "review_request_duration_seconds",
			Help:    "Duration of review requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &ReviewHandler{
		upsertReviewHandler: upsertReviewHandler,
		getRatingHandler:    getRatingHandler,
		listReviewsHandler:  listReviewsHandler,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
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
func (h *ReviewHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all review routes
func (h *ReviewHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products/{id}/reviews", h.metricsMiddleware("/api/products/{id}/reviews", userhttp.OptionalAuthMiddleware(h.ListReviews))).Methods("GET")
	router.HandleFunc("/api/products/{id}/rating", h.metricsMiddleware("/api/products/{id}/rating", h.GetRating)).Methods("GET")
	router.HandleFunc("/api/products/{id}/reviews", h.metricsMiddleware("/api/products/{id}/reviews", userhttp.AuthMiddleware(h.SubmitReview))).Methods("POST")
}

// SubmitReview handles POST /api/products/{id}/reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Unauthorized",
		})
		return
	}

	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	review, err := h.upsertReviewHandler.Handle(command.UpsertReviewCommand{
		ProductID: uint(productID),
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRating) {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		logger.Logger.Error().Err(err).Uint("product_id", uint(productID)).Msg("Failed to save review")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to save review",
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Thank you for your review!",
		Data:    review,
	})
}

// reviewView decorates a review with whether it belongs to the requester,
// so the product page can offer an edit form instead of a blank one
type reviewView struct {
	domain.Review
	IsMine bool `json:"is_mine"`
}

// ListReviews handles GET /api/products/{id}/reviews. Authentication is
// optional; a valid token marks the requester's own review in the listing.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	reviews, err := h.listReviewsHandler.Handle(query.ListReviewsQuery{
		ProductID: uint(productID),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list reviews")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list reviews",
		})
		return
	}

	userID, signedIn := userhttp.UserIDFromContext(r.Context())
	views := make([]reviewView, 0, len(reviews))
	for i := range reviews {
		views = append(views, reviewView{
			Review: reviews[i],
			IsMine: signedIn && reviews[i].UserID == userID,
		})
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    views,
	})
}

// GetRating handles GET /api/products/{id}/rating
func (h *ReviewHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	summary, err := h.getRatingHandler.Handle(query.GetRatingQuery{ProductID: uint(productID)})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to aggregate rating")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to aggregate rating",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    summary,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

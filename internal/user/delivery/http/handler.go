package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pcshop/storefront/internal/user/domain"
	"github.com/pcshop/storefront/internal/user/usecase/command"
	"github.com/pcshop/storefront/internal/user/usecase/query"
	"github.com/pcshop/storefront/pkg/logger"
)

// UserHandler handles HTTP requests for users using CQRS pattern
type UserHandler struct {
	// Command handlers
	registerHandler      *command.RegisterUserHandler
	loginHandler         *command.LoginUserHandler
	updateProfileHandler *command.UpdateProfileHandler

	// Query handlers
	getUserHandler    *query.GetUserHandler
	getProfileHandler *query.GetProfileHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalUsers     prometheus.Gauge

	repo domain.UserRepository
}

// NewUserHandler creates a new user handler with CQRS pattern (manual DI for backwards compatibility)
func NewUserHandler(repo domain.UserRepository) *UserHandler {
	return newUserHandler(
		command.NewRegisterUserHandler(repo),
		command.NewLoginUserHandler(repo),
		command.NewUpdateProfileHandler(repo),
		query.NewGetUserHandler(repo),
		query.NewGetProfileHandler(repo),
		repo,
	)
}

// NewUserHandlerWithDI creates a new user handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewUserHandlerWithDI(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	updateProfileHandler *command.UpdateProfileHandler,
	getUserHandler *query.GetUserHandler,
	getProfileHandler *query.GetProfileHandler,
	repo domain.UserRepository,
) *UserHandler {
	return newUserHandler(registerHandler, loginHandler, updateProfileHandler, getUserHandler, getProfileHandler, repo)
}

// newUserHandler is the internal constructor used by both manual and Wire DI
func newUserHandler(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	updateProfileHandler *command.UpdateProfileHandler,
	getUserHandler *query.GetUserHandler,
	getProfileHandler *query.GetProfileHandler,
	repo domain.UserRepository,
) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_requests_total",
			Help: "Total number of requests to user endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_request_duration_seconds",
			Help:    "Duration of user requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalUsers := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "registered_users_total",
			Help: "Total number of registered users",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalUsers)

	return &UserHandler{
		registerHandler:      registerHandler,
		loginHandler:         loginHandler,
		updateProfileHandler: updateProfileHandler,
		getUserHandler:       getUserHandler,
		getProfileHandler:    getProfileHandler,
		repo:                 repo,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
		totalUsers:           totalUsers,
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
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/users/register", h.metricsMiddleware("/api/users/register", h.Register)).Methods("POST")
	router.HandleFunc("/api/users/login", h.metricsMiddleware("/api/users/login", h.Login)).Methods("POST")

	// Authenticated routes
	router.HandleFunc("/api/users/me", h.metricsMiddleware("/api/users/me", AuthMiddleware(h.Me))).Methods("GET")
	router.HandleFunc("/api/profile", h.metricsMiddleware("/api/profile", AuthMiddleware(h.GetProfile))).Methods("GET")
	router.HandleFunc("/api/profile", h.metricsMiddleware("/api/profile", AuthMiddleware(h.UpdateProfile))).Methods("PUT")

	// Admin routes
	router.HandleFunc("/api/users", h.metricsMiddleware("/api/users", AdminMiddleware(h.ListUsers))).Methods("GET")
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	user, err := h.registerHandler.Handle(command.RegisterUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail) {
			status = http.StatusConflict
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateUsersMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "User registered successfully",
		Data:    user,
	})
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	resp, err := h.loginHandler.Handle(command.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		logger.Logger.Warn().Str("username", req.Username).Msg("Login failed")
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Invalid credentials",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
		Data:    resp,
	})
}

// Me handles GET /api/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	user, err := h.getUserHandler.Handle(query.GetUserQuery{ID: userID})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "User not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    user,
	})
}

// GetProfile handles GET /api/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	view, err := h.getProfileHandler.Handle(query.GetProfileQuery{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to load profile")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load profile",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// UpdateProfile handles PUT /api/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Authentication required"})
		return
	}

	var req struct {
		Phone   string `json:"phone"`
		Address string `json:"address"`
		City    string `json:"city"`
		State   string `json:"state"`
		Pincode string `json:"pincode"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	profile, err := h.updateProfileHandler.Handle(command.UpdateProfileCommand{
		UserID:  userID,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to update profile")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to update profile",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Profile updated successfully",
		Data:    profile,
	})
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	if limit == 0 {
		limit = 10
	}

	users, err := h.repo.FindAll(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list users")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list users",
		})
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"users":  users,
			"total":  count,
			"limit":  limit,
			"offset": offset,
		},
	})
}

func (h *UserHandler) updateUsersMetric() {
	if count, err := h.repo.Count(); err == nil {
		h.totalUsers.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

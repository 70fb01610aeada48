package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/pcshop/storefront/internal/catalog/domain"
	"github.com/pcshop/storefront/internal/catalog/usecase/command"
	"github.com/pcshop/storefront/internal/catalog/usecase/query"
	userhttp "github.com/pcshop/storefront/internal/user/delivery/http"
	"github.com/pcshop/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the catalog using CQRS pattern
type CatalogHandler struct {
	// Command handlers
	createProductHandler *command.CreateProductHandler
	updateProductHandler *command.UpdateProductHandler
	deleteProductHandler *command.DeleteProductHandler
	updateStockHandler   *command.UpdateStockHandler
	createCategoryHandler *command.CreateCategoryHandler
	createCompanyHandler  *command.CreateCompanyHandler
	addImageHandler       *command.AddProductImageHandler

	// Query handlers
	getHomeHandler         *query.GetHomeHandler
	listCategoriesHandler  *query.ListCategoriesHandler
	getCategoryHandler     *query.GetCategoryHandler
	listCompanyHandler     *query.ListCompanyProductsHandler
	getProductHandler      *query.GetProductHandler
	searchHandler          *query.SearchProductsHandler

	repo domain.CatalogRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalProducts  prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler with CQRS pattern (manual DI for backwards compatibility)
func NewCatalogHandler(repo domain.CatalogRepository) *CatalogHandler {
	return newCatalogHandler(
		command.NewCreateProductHandler(repo),
		command.NewUpdateProductHandler(repo),
		command.NewDeleteProductHandler(repo),
		command.NewUpdateStockHandler(repo),
		command.NewCreateCategoryHandler(repo),
		command.NewCreateCompanyHandler(repo),
		command.NewAddProductImageHandler(repo),
		query.NewGetHomeHandler(repo),
		query.NewListCategoriesHandler(repo),
		query.NewGetCategoryHandler(repo),
		query.NewListCompanyProductsHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewSearchProductsHandler(repo),
		repo,
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewCatalogHandlerWithDI(
	createProductHandler *command.CreateProductHandler,
	updateProductHandler *command.UpdateProductHandler,
	deleteProductHandler *command.DeleteProductHandler,
	updateStockHandler *command.UpdateStockHandler,
	createCategoryHandler *command.CreateCategoryHandler,
	createCompanyHandler *command.CreateCompanyHandler,
	addImageHandler *command.AddProductImageHandler,
	getHomeHandler *query.GetHomeHandler,
	listCategoriesHandler *query.ListCategoriesHandler,
	getCategoryHandler *query.GetCategoryHandler,
	listCompanyHandler *query.ListCompanyProductsHandler,
	getProductHandler *query.GetProductHandler,
	searchHandler *query.SearchProductsHandler,
	repo domain.CatalogRepository,
) *CatalogHandler {
	return newCatalogHandler(
		createProductHandler, updateProductHandler, deleteProductHandler, updateStockHandler,
		createCategoryHandler, createCompanyHandler, addImageHandler,
		getHomeHandler, listCategoriesHandler, getCategoryHandler,
		listCompanyHandler, getProductHandler, searchHandler,
		repo,
	)
}

// newCatalogHandler is the internal constructor used by both manual and Wire DI
func newCatalogHandler(
	createProductHandler *command.CreateProductHandler,
	updateProductHandler *command.UpdateProductHandler,
	deleteProductHandler *command.DeleteProductHandler,
	updateStockHandler *command.UpdateStockHandler,
	createCategoryHandler *command.CreateCategoryHandler,
	createCompanyHandler *command.CreateCompanyHandler,
	addImageHandler *command.AddProductImageHandler,
	getHomeHandler *query.GetHomeHandler,
	listCategoriesHandler *query.ListCategoriesHandler,
	getCategoryHandler *query.GetCategoryHandler,
	listCompanyHandler *query.ListCompanyProductsHandler,
	getProductHandler *query.GetProductHandler,
	searchHandler *query.SearchProductsHandler,
	repo domain.CatalogRepository,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products_total",
			Help: "Total number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalProducts)

	return &CatalogHandler{
		createProductHandler:  createProductHandler,
		updateProductHandler:  updateProductHandler,
		deleteProductHandler:  deleteProductHandler,
		updateStockHandler:    updateStockHandler,
		createCategoryHandler: createCategoryHandler,
		createCompanyHandler:  createCompanyHandler,
		addImageHandler:       addImageHandler,
		getHomeHandler:        getHomeHandler,
		listCategoriesHandler: listCategoriesHandler,
		getCategoryHandler:    getCategoryHandler,
		listCompanyHandler:    listCompanyHandler,
		getProductHandler:     getProductHandler,
		searchHandler:         searchHandler,
		repo:                  repo,
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
		totalProducts:         totalProducts,
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

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/home", h.metricsMiddleware("/api/home", h.GetHome)).Methods("GET")
	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories/{category}", h.metricsMiddleware("/api/categories/{category}", h.GetCategory)).Methods("GET")
	router.HandleFunc("/api/categories/{category}/{company}", h.metricsMiddleware("/api/categories/{category}/{company}", h.ListCompanyProducts)).Methods("GET")
	router.HandleFunc("/api/categories/{category}/{company}/{product}", h.metricsMiddleware("/api/categories/{category}/{company}/{product}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/search", h.metricsMiddleware("/api/search", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/api/compatibility", h.metricsMiddleware("/api/compatibility", h.CheckCompatibility)).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/admin/products", h.metricsMiddleware("/api/admin/products", userhttp.AdminMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/admin/products/{id}", h.metricsMiddleware("/api/admin/products/{id}", userhttp.AdminMiddleware(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/admin/products/{id}", h.metricsMiddleware("/api/admin/products/{id}", userhttp.AdminMiddleware(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/api/admin/products/{id}/stock", h.metricsMiddleware("/api/admin/products/{id}/stock", userhttp.AdminMiddleware(h.UpdateStock))).Methods("PATCH")
	router.HandleFunc("/api/admin/products/{id}/images", h.metricsMiddleware("/api/admin/products/{id}/images", userhttp.AdminMiddleware(h.AddProductImage))).Methods("POST")
	router.HandleFunc("/api/admin/categories", h.metricsMiddleware("/api/admin/categories", userhttp.AdminMiddleware(h.CreateCategory))).Methods("POST")
	router.HandleFunc("/api/admin/companies", h.metricsMiddleware("/api/admin/companies", userhttp.AdminMiddleware(h.CreateCompany))).Methods("POST")
}

// GetHome handles GET /api/home
func (h *CatalogHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	home, err := h.getHomeHandler.Handle(query.GetHomeQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to load home data")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load home data",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    home,
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCategoriesHandler.Handle(query.ListCategoriesQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list categories")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list categories",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    categories,
	})
}

// GetCategory handles GET /api/categories/{category}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	category, err := h.getCategoryHandler.Handle(query.GetCategoryQuery{Slug: vars["category"]})
	if err != nil {
		h.respondCatalogError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    category,
	})
}

// ListCompanyProducts handles GET /api/categories/{category}/{company}
func (h *CatalogHandler) ListCompanyProducts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	q := query.ListCompanyProductsQuery{
		CategorySlug: vars["category"],
		CompanySlug:  vars["company"],
		MinPrice:     r.URL.Query().Get("min_price"),
		MaxPrice:     r.URL.Query().Get("max_price"),
		SortBy:       r.URL.Query().Get("sort"),
		Page:         page,
	}

	pageData, err := h.listCompanyHandler.Handle(q)
	if err != nil {
		h.respondCatalogError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    pageData,
	})
}

// GetProduct handles GET /api/categories/{category}/{company}/{product}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	detail, err := h.getProductHandler.Handle(query.GetProductQuery{
		CategorySlug: vars["category"],
		CompanySlug:  vars["company"],
		ProductSlug:  vars["product"],
	})
	if err != nil {
		h.respondCatalogError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    detail,
	})
}

// CheckCompatibility handles GET /api/compatibility. The check itself is a
// placeholder; it echoes the selected parts and always reports compatible.
// TODO: replace with real socket/chipset/wattage rules once the parts data
// carries those attributes.
func (h *CatalogHandler) CheckCompatibility(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"cpu":                 q.Get("cpu"),
			"motherboard":         q.Get("motherboard"),
			"ram":                 q.Get("ram"),
			"gpu":                 q.Get("gpu"),
			"is_compatible":       true,
			"compatibility_notes": []string{},
		},
	})
}

// SearchProducts handles GET /api/search
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	results, err := h.searchHandler.Handle(query.SearchProductsQuery{
		Query: r.URL.Query().Get("q"),
		Page:  page,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Search failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Search failed",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    results,
	})
}

type productRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Price              string `json:"price"`
	DiscountPercentage string `json:"discount_percentage"`
	Stock              int    `json:"stock"`
	IsAvailable        bool   `json:"is_available"`
	IsFeatured         bool   `json:"is_featured"`
	CategoryID         uint   `json:"category_id"`
	CompanyID          uint   `json:"company_id"`
}

// parsePrices converts the request's decimal strings, defaulting discount to 0
func (req *productRequest) parsePrices() (price, discount decimal.Decimal, err error) {
	price, err = decimal.NewFromString(req.Price)
	if err != nil {
		return price, discount, errors.New("invalid price")
	}
	if req.DiscountPercentage == "" {
		return price, decimal.Zero, nil
	}
	discount, err = decimal.NewFromString(req.DiscountPercentage)
	if err != nil {
		return price, discount, errors.New("invalid discount percentage")
	}
	return price, discount, nil
}

// CreateProduct handles POST /api/admin/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	price, discount, err := req.parsePrices()
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	product, err := h.createProductHandler.Handle(command.CreateProductCommand{
		Name:               req.Name,
		Description:        req.Description,
		Price:              price,
		DiscountPercentage: discount,
		Stock:              req.Stock,
		IsAvailable:        req.IsAvailable,
		IsFeatured:         req.IsFeatured,
		CategoryID:         req.CategoryID,
		CompanyID:          req.CompanyID,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/admin/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req productRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	price, discount, err := req.parsePrices()
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	product, err := h.updateProductHandler.Handle(command.UpdateProductCommand{
		ID:                 uint(id),
		Name:               req.Name,
		Description:        req.Description,
		Price:              price,
		DiscountPercentage: discount,
		Stock:              req.Stock,
		IsAvailable:        req.IsAvailable,
		IsFeatured:         req.IsFeatured,
	})
	if err != nil {
		h.respondCatalogError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/admin/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	if err := h.deleteProductHandler.Handle(command.DeleteProductCommand{ID: uint(id)}); err != nil {
		h.respondCatalogError(w, err)
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// UpdateStock handles PATCH /api/admin/products/{id}/stock
func (h *CatalogHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req struct {
		Stock int `json:"stock"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.updateStockHandler.Handle(command.UpdateStockCommand{
		ProductID: uint(id),
		Stock:     req.Stock,
	}); err != nil {
		h.respondCatalogError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
	})
}

// AddProductImage handles POST /api/admin/products/{id}/images
func (h *CatalogHandler) AddProductImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req struct {
		URL      string `json:"url"`
		AltText  string `json:"alt_text"`
		Position int    `json:"position"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	image, err := h.addImageHandler.Handle(command.AddProductImageCommand{
		ProductID: uint(id),
		URL:       req.URL,
		AltText:   req.AltText,
		Position:  req.Position,
	})
	if err != nil {
		h.respondCatalogError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Image added successfully",
		Data:    image,
	})
}

// CreateCategory handles POST /api/admin/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	category, err := h.createCategoryHandler.Handle(command.CreateCategoryCommand{Name: req.Name})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create category")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// CreateCompany handles POST /api/admin/companies
func (h *CatalogHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Website string `json:"website"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	company, err := h.createCompanyHandler.Handle(command.CreateCompanyCommand{
		Name:    req.Name,
		Website: req.Website,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create company")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Company created successfully",
		Data:    company,
	})
}

// RegisterHealthCheck registers health check endpoint
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Storefront is healthy",
		})
	}).Methods("GET")
}

func (h *CatalogHandler) updateProductsMetric() {
	if count, err := h.repo.CountProducts(); err == nil {
		h.totalProducts.Set(float64(count))
	}
}

// respondCatalogError maps domain errors to HTTP statuses
func (h *CatalogHandler) respondCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
	case errors.Is(err, domain.ErrCategoryNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Category not found"})
	case errors.Is(err, domain.ErrCompanyNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Company not found"})
	default:
		logger.Logger.Error().Err(err).Msg("Catalog request failed")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

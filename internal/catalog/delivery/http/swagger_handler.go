package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the storefront
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// GetHome godoc
// @Summary Store home page data
// @Description Get featured products, top discounts and categories for the landing page
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{featured=array,deals=array,categories=array}}
// @Router /api/home [get]
func (h *CatalogHandler) GetHomeDoc() {}

// ListCategories godoc
// @Summary List categories
// @Description List all product categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategoriesDoc() {}

// GetCategory godoc
// @Summary Get category by slug
// @Description Get a category and the companies selling in it
// @Tags Catalog
// @Produce json
// @Param category path string true "Category slug"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/categories/{category} [get]
func (h *CatalogHandler) GetCategoryDoc() {}

// ListCompanyProducts godoc
// @Summary List products of a company within a category
// @Description Paginated product listing with price filters and sorting
// @Tags Catalog
// @Produce json
// @Param category path string true "Category slug"
// @Param company path string true "Company slug"
// @Param page query int false "Page number"
// @Param min_price query string false "Minimum price"
// @Param max_price query string false "Maximum price"
// @Param sort query string false "Sort order (name/price_low/price_high/newest)"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int,page=int}}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/categories/{category}/{company} [get]
func (h *CatalogHandler) ListCompanyProductsDoc() {}

// GetProduct godoc
// @Summary Get product details
// @Description Get a product by its category, company and product slugs
// @Tags Catalog
// @Produce json
// @Param category path string true "Category slug"
// @Param company path string true "Company slug"
// @Param product path string true "Product slug"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/categories/{category}/{company}/{product} [get]
func (h *CatalogHandler) GetProductDoc() {}

// SearchProducts godoc
// @Summary Search products
// @Description Full text search over product names and descriptions
// @Tags Catalog
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int}}
// @Router /api/search [get]
func (h *CatalogHandler) SearchProductsDoc() {}

// CreateProduct godoc
// @Summary Create product (admin)
// @Description Admin endpoint to create a new product
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,price=string,discount_percentage=string,stock=int,is_available=bool,is_featured=bool,category_id=int,company_id=int} true "Product data"
// @Success 201 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/admin/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// UpdateStock godoc
// @Summary Update product stock (admin)
// @Description Admin endpoint to set the stock level of a product
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{stock=int} true "New stock level"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/admin/products/{id}/stock [patch]
func (h *CatalogHandler) UpdateStockDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *CatalogHandler) HealthCheckDoc() {}

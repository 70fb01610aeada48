package main

// @title Storefront API
// @version 1.0
// @description E-commerce storefront API: catalog, cart, checkout, orders and reviews with full observability stack (Prometheus, Jaeger)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Catalog
// @tag.description Category, company and product browsing

// @tag.name Cart
// @tag.description Shopping cart endpoints

// @tag.name Orders
// @tag.description Checkout and order endpoints

// @tag.name Reviews
// @tag.description Product review endpoints

// @tag.name Admin
// @tag.description Admin-only endpoints

// @tag.name Health
// @tag.description Health check endpoints

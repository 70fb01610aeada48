package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/pcshop/storefront/api-gateway/config"
	"github.com/pcshop/storefront/api-gateway/health"
	"github.com/pcshop/storefront/api-gateway/middleware"
	"github.com/pcshop/storefront/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	Description  string
	RequireAuth  bool
	RequireAdmin bool
	Throttled    bool // stricter rate limit (checkout)
}

// Routes holds all route definitions. Auth is enforced at the gateway edge,
// the storefront validates tokens again for defense in depth.
var Routes = []RouteDefinition{
	// Public browsing
	{Prefix: "/api/home", Description: "Store home page"},
	{Prefix: "/api/categories", Description: "Category, company and product browsing"},
	{Prefix: "/api/search", Description: "Product search"},
	{Prefix: "/api/compatibility", Description: "Parts compatibility checker"},
	{Prefix: "/api/products", Description: "Product reviews and ratings (POST requires auth downstream)"},
	{Prefix: "/api/newsletter", Description: "Newsletter subscription"},
	{Prefix: "/api/contact", Description: "Contact form"},
	{Prefix: "/api/users", Description: "Registration, login and account (mixed auth downstream)"},

	// Authenticated shopping
	{Prefix: "/api/cart", Description: "Shopping cart", RequireAuth: true},
	{Prefix: "/api/checkout", Description: "Checkout and order placement", RequireAuth: true, Throttled: true},
	{Prefix: "/api/orders", Description: "Order history", RequireAuth: true},
	{Prefix: "/api/profile", Description: "Shipping profile", RequireAuth: true},

	// Admin
	{Prefix: "/api/admin", Description: "Catalog, order and marketing administration", RequireAuth: true, RequireAdmin: true},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, redisClient *redis.Client) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks storefront instances)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed instance health checks
	app.Get("/health/instances", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		return c.JSON(healthChecker.CheckAllInstances(ctx))
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Storefront API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all storefront routes
	for _, route := range Routes {
		registerRoute(app, route, reverseProxy, redisClient)
	}
}

// registerRoute registers all HTTP methods for a route prefix
func registerRoute(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy, redisClient *redis.Client) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c)
	}

	var middlewares []fiber.Handler

	if route.RequireAdmin {
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	} else if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}

	if route.Throttled && redisClient != nil {
		middlewares = append(middlewares, middleware.CheckoutRateLimiter(redisClient))
	}

	group := app.Group(route.Prefix, middlewares...)
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}

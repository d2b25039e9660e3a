package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aykah/storefront/api-gateway/config"
	"github.com/aykah/storefront/api-gateway/health"
	"github.com/aykah/storefront/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	Description string
}

// Routes holds all storefront route prefixes. Session handling lives in
// the storefront service; the gateway never inspects tokens.
var Routes = []RouteDefinition{
	{Prefix: "/api/products", Description: "Product catalog browsing"},
	{Prefix: "/api/categories", Description: "Category listing"},
	{Prefix: "/api/cart", Description: "Shopping cart"},
	{Prefix: "/api/wishlist", Description: "Saved products"},
	{Prefix: "/api/orders", Description: "Order history"},
	{Prefix: "/api/auth", Description: "Sign in, sign up, session"},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream probes)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (probes storefront instances)
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

	// Load balancer stats
	app.Get("/health/instances", func(c *fiber.Ctx) error {
		return c.JSON(reverseProxy.LoadBalancer().Stats())
	})

	// Routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Storefront Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	handler := func(c *fiber.Ctx) error {
		return reverseProxy.ProxyRequest(c)
	}

	for _, route := range Routes {
		group := app.Group(route.Prefix)
		group.All("/*", handler)
		app.All(route.Prefix, handler)
	}
}

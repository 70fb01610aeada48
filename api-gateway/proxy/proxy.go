package proxy

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pcshop/storefront/api-gateway/config"
	"github.com/pcshop/storefront/api-gateway/loadbalancer"
	"github.com/pcshop/storefront/pkg/logger"
)

const maxAttempts = 3

// ReverseProxy forwards requests to storefront instances
type ReverseProxy struct {
	config *config.GatewayConfig
	client *http.Client
	lb     *loadbalancer.RoundRobin
}

// NewReverseProxy creates a new reverse proxy
func NewReverseProxy(cfg *config.GatewayConfig) *ReverseProxy {
	return &ReverseProxy{
		config: cfg,
		lb:     loadbalancer.NewRoundRobin(cfg.Service.Instances),
		client: &http.Client{
			Timeout: cfg.Service.Timeout,
		},
	}
}

// ProxyRequest forwards the request, retrying the next instance on
// connection failure. Retries are connection-level only, a response from
// the backend is always returned as-is.
func (p *ReverseProxy) ProxyRequest(c *fiber.Ctx) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		serverURL := p.lb.Next()
		if serverURL == "" {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "No available storefront instances",
			})
		}

		logger.Logger.Debug().
			Str("target_url", serverURL).
			Str("path", c.Path()).
			Int("attempt", attempt).
			Msg("Load balancer selected instance")

		targetURL := p.buildTargetURL(c, serverURL)

		req, err := http.NewRequest(c.Method(), targetURL, bytes.NewReader(c.Body()))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create request",
			})
		}

		p.copyHeaders(c, req)

		resp, err := p.client.Do(req)
		if err != nil {
			lastErr = err
			logger.Logger.Warn().
				Err(err).
				Str("target_url", serverURL).
				Int("attempt", attempt).
				Msg("Instance unreachable, retrying")
			time.Sleep(time.Duration(attempt*attempt) * 100 * time.Millisecond)
			continue
		}
		defer resp.Body.Close()

		p.copyResponseHeaders(c, resp)
		c.Status(resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to read response",
			})
		}

		return c.Send(body)
	}

	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error":   "Failed to reach storefront",
		"details": lastErr.Error(),
	})
}

// buildTargetURL constructs the full URL for a specific instance
func (p *ReverseProxy) buildTargetURL(c *fiber.Ctx, serverURL string) string {
	path := string(c.Request().URI().Path())

	queryString := string(c.Request().URI().QueryString())
	if queryString != "" {
		queryString = "?" + queryString
	}

	return serverURL + path + queryString
}

// GetLoadBalancer returns the load balancer (for stats)
func (p *ReverseProxy) GetLoadBalancer() *loadbalancer.RoundRobin {
	return p.lb
}

// copyHeaders copies relevant headers from Fiber context to http.Request
func (p *ReverseProxy) copyHeaders(c *fiber.Ctx, req *http.Request) {
	c.Request().Header.VisitAll(func(key, value []byte) {
		keyStr := string(key)
		if strings.ToLower(keyStr) == "host" {
			return
		}
		req.Header.Set(keyStr, string(value))
	})

	req.Header.Set("X-Forwarded-For", c.IP())
	req.Header.Set("X-Forwarded-Proto", c.Protocol())
	req.Header.Set("X-Forwarded-Host", c.Hostname())
}

// copyResponseHeaders copies headers from http.Response to Fiber context
func (p *ReverseProxy) copyResponseHeaders(c *fiber.Ctx, resp *http.Response) {
	for key, values := range resp.Header {
		if strings.ToLower(key) == "content-length" {
			continue
		}
		for _, value := range values {
			c.Set(key, value)
		}
	}
}

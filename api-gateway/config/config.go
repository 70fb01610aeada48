package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for the backend storefront
type ServiceConfig struct {
	Name        string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port    string
	Service ServiceConfig
}

// LoadConfig loads the gateway configuration
func LoadConfig() *GatewayConfig {
	instances := strings.Split(getEnv("STOREFRONT_INSTANCES", "http://localhost:8080"), ",")
	for i := range instances {
		instances[i] = strings.TrimSpace(instances[i])
	}

	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Service: ServiceConfig{
			Name:        "storefront",
			Instances:   instances,
			Timeout:     30 * time.Second,
			HealthCheck: "/health",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

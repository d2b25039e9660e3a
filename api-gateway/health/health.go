package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/aykah/storefront/api-gateway/config"
	"github.com/aykah/storefront/pkg/logger"
)

// InstanceHealth represents the health status of a storefront instance
type InstanceHealth struct {
	URL       string        `json:"url"`
	Status    string        `json:"status"` // healthy, unhealthy
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// GatewayHealth represents the overall gateway health
type GatewayHealth struct {
	Gateway   string           `json:"gateway"`
	Status    string           `json:"status"` // healthy, degraded, unhealthy
	Instances []InstanceHealth `json:"instances"`
	Uptime    time.Duration    `json:"uptime_seconds"`
}

// HealthChecker probes the storefront instances behind the gateway
type HealthChecker struct {
	config    *config.GatewayConfig
	client    *http.Client
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(cfg *config.GatewayConfig) *HealthChecker {
	return &HealthChecker{
		config: cfg,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		startTime: time.Now(),
	}
}

// CheckInstance checks health of a single storefront instance
func (h *HealthChecker) CheckInstance(ctx context.Context, baseURL string) InstanceHealth {
	start := time.Now()
	healthURL := baseURL + h.config.Storefront.HealthCheck

	result := InstanceHealth{
		URL:       baseURL,
		Timestamp: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to create request: %v", err)
		result.Latency = time.Since(start)
		return result
	}

	resp, err := h.client.Do(req)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to reach instance: %v", err)
		result.Latency = time.Since(start)
		return result
	}
	defer resp.Body.Close()

	result.Latency = time.Since(start)

	if resp.StatusCode == http.StatusOK {
		result.Status = "healthy"
	} else {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Unexpected status code: %d", resp.StatusCode)
	}

	return result
}

// CheckAllInstances probes every instance concurrently
func (h *HealthChecker) CheckAllInstances(ctx context.Context) GatewayHealth {
	instances := make([]InstanceHealth, len(h.config.Storefront.Instances))
	var wg sync.WaitGroup

	for i, url := range h.config.Storefront.Instances {
		wg.Add(1)
		go func(idx int, baseURL string) {
			defer wg.Done()
			health := h.CheckInstance(ctx, baseURL)
			instances[idx] = health

			if health.Status == "healthy" {
				logger.Logger.Debug().
					Str("instance", baseURL).
					Dur("latency", health.Latency).
					Msg("Instance health check")
			} else {
				logger.Logger.Warn().
					Str("instance", baseURL).
					Str("error", health.Error).
					Msg("Instance health check failed")
			}
		}(i, url)
	}

	wg.Wait()

	return GatewayHealth{
		Gateway:   "storefront-gateway",
		Status:    h.determineOverallStatus(instances),
		Instances: instances,
		Uptime:    time.Since(h.startTime),
	}
}

func (h *HealthChecker) determineOverallStatus(instances []InstanceHealth) string {
	healthyCount := 0
	for _, inst := range instances {
		if inst.Status == "healthy" {
			healthyCount++
		}
	}

	if healthyCount == len(instances) {
		return "healthy"
	} else if healthyCount > 0 {
		return "degraded"
	}
	return "unhealthy"
}

// QuickCheck reports gateway liveness without probing downstream
func (h *HealthChecker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":    "healthy",
		"gateway":   "storefront-gateway",
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}

package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthCheckerHealthy(t *testing.T) {
	hc := NewHealthChecker("test-service", "1.0.0")
	hc.AddCheck("config", func() CheckResult {
		return CheckResult{Status: StatusHealthy}
	})

	health := hc.CheckHealth()
	if health.Status != StatusHealthy {
		t.Errorf("expected healthy, got %s", health.Status)
	}
	if health.Service != "test-service" {
		t.Errorf("expected service 'test-service', got %s", health.Service)
	}
	if len(health.Checks) != 1 {
		t.Errorf("expected 1 check result, got %d", len(health.Checks))
	}
}

func TestHealthCheckerAggregation(t *testing.T) {
	tests := []struct {
		name     string
		checks   map[string]string
		expected string
	}{
		{
			name:     "all healthy",
			checks:   map[string]string{"a": StatusHealthy, "b": StatusHealthy},
			expected: StatusHealthy,
		},
		{
			name:     "one degraded",
			checks:   map[string]string{"a": StatusHealthy, "b": StatusDegraded},
			expected: StatusDegraded,
		},
		{
			name:     "unhealthy wins over degraded",
			checks:   map[string]string{"a": StatusDegraded, "b": StatusUnhealthy},
			expected: StatusUnhealthy,
		},
		{
			name:     "unknown status treated as unhealthy",
			checks:   map[string]string{"a": "bogus"},
			expected: StatusUnhealthy,
		},
		{
			name:     "no checks",
			checks:   map[string]string{},
			expected: StatusHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := NewHealthChecker("test-service", "1.0.0")
			for name, status := range tt.checks {
				s := status
				hc.AddCheck(name, func() CheckResult {
					return CheckResult{Status: s}
				})
			}

			health := hc.CheckHealth()
			if health.Status != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, health.Status)
			}
		})
	}
}

func TestHealthCheckerHandlerUnhealthy(t *testing.T) {
	hc := NewHealthChecker("test-service", "1.0.0")
	hc.AddCheck("upstream", func() CheckResult {
		return CheckResult{Status: StatusUnhealthy, Message: "down"}
	})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/health", nil)
	hc.Handler()(c)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestConfigurationHealthCheck(t *testing.T) {
	check := ConfigurationHealthCheck(map[string]string{
		"APIFY_TOKEN": "secret",
	})
	if result := check(); result.Status != StatusHealthy {
		t.Errorf("expected healthy, got %s", result.Status)
	}

	check = ConfigurationHealthCheck(map[string]string{
		"APIFY_TOKEN": "",
	})
	result := check()
	if result.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy for missing value, got %s", result.Status)
	}
	if result.Message == "" {
		t.Error("expected message naming the missing configuration")
	}
}

func TestHTTPServiceHealthCheck(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	check := HTTPServiceHealthCheck("upstream", healthy.URL)
	result := check()
	if result.Status != StatusHealthy {
		t.Errorf("expected healthy, got %s: %s", result.Status, result.Message)
	}
	if result.Latency == "" {
		t.Error("expected latency to be recorded")
	}

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	check = HTTPServiceHealthCheck("upstream", broken.URL)
	if result := check(); result.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy for 500 upstream, got %s", result.Status)
	}

	check = HTTPServiceHealthCheck("upstream", "http://127.0.0.1:1")
	if result := check(); result.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy for unreachable upstream, got %s", result.Status)
	}
}

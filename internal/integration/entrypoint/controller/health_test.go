package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthController_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		checker      func() bool
		wantStatus   int
		wantDatabase string
	}{
		{"store reachable", func() bool { return true }, http.StatusOK, "connected"},
		{"store unreachable", func() bool { return false }, http.StatusServiceUnavailable, "disconnected"},
		{"no checker configured", nil, http.StatusServiceUnavailable, "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health", NewHealthController("postgres", tt.checker).Check)

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			var body HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Database != tt.wantDatabase {
				t.Errorf("expected database %q, got %q", tt.wantDatabase, body.Database)
			}
			if body.Driver != "postgres" {
				t.Errorf("expected driver postgres, got %q", body.Driver)
			}
		})
	}
}

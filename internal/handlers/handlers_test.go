package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"platform-lambda-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func testHandler() *PlatformHandler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewPlatformHandler(log)
}

func TestHandleHealth(t *testing.T) {
	h := testHandler()

	result, err := h.HandleHealth(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	health, ok := result.(*models.HealthResponse)
	if !ok {
		t.Fatalf("Expected HealthResponse, got %T", result)
	}
	if health.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got %q", health.Status)
	}
	if health.Service != "example-python-lambda" {
		t.Errorf("Expected service 'example-python-lambda', got %q", health.Service)
	}
}

func TestHandleRoot(t *testing.T) {
	h := testHandler()

	result, err := h.HandleRoot(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	root, ok := result.(*models.RootResponse)
	if !ok {
		t.Fatalf("Expected RootResponse, got %T", result)
	}
	if root.Message != "Hello from Python Lambda!" {
		t.Errorf("Unexpected message: %q", root.Message)
	}
}

func TestHandlePlatformMessageConstruction(t *testing.T) {
	h := testHandler()

	tests := []struct {
		name        string
		req         *models.PlatformRequest
		wantMessage string
	}{
		{
			name:        "name and default version",
			req:         &models.PlatformRequest{Name: "Acme", Version: "1.0.0"},
			wantMessage: "Welcome to Acme! Running version 1.0.0.",
		},
		{
			name:        "empty version skips the version clause",
			req:         &models.PlatformRequest{Name: "Acme", Version: "", Description: "x"},
			wantMessage: "Welcome to Acme! Description: x",
		},
		{
			name:        "all fields present",
			req:         &models.PlatformRequest{Name: "Acme", Version: "2.0.0", Description: "a platform"},
			wantMessage: "Welcome to Acme! Running version 2.0.0. Description: a platform",
		},
		{
			name:        "name only",
			req:         &models.PlatformRequest{Name: "Acme"},
			wantMessage: "Welcome to Acme!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.HandlePlatform(context.Background(), nil, tt.req)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			platform, ok := result.(*models.PlatformResponse)
			if !ok {
				t.Fatalf("Expected PlatformResponse, got %T", result)
			}
			if platform.Message != tt.wantMessage {
				t.Errorf("Expected message %q, got %q", tt.wantMessage, platform.Message)
			}
			if platform.Platform.Name != tt.req.Name {
				t.Errorf("Expected echoed name %q, got %q", tt.req.Name, platform.Platform.Name)
			}
			if platform.Platform.Status != "active" {
				t.Errorf("Expected status 'active', got %q", platform.Platform.Status)
			}
			if platform.Platform.Uptime != "99.9%" {
				t.Errorf("Expected uptime '99.9%%', got %q", platform.Platform.Uptime)
			}
		})
	}
}

func TestHandlePlatformRejectsWrongPayloadType(t *testing.T) {
	h := testHandler()

	if _, err := h.HandlePlatform(context.Background(), nil, "not a platform request"); err == nil {
		t.Error("Expected error for wrong payload type")
	}
}

func testGinRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, testHandler())
	return router
}

func TestGinRoutes(t *testing.T) {
	router := testGinRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "health",
			method:     "GET",
			path:       "/health",
			wantStatus: 200,
			wantBody:   `{"status":"healthy","service":"example-python-lambda"}`,
		},
		{
			name:       "root",
			method:     "GET",
			path:       "/",
			wantStatus: 200,
			wantBody:   `{"message":"Hello from Python Lambda!"}`,
		},
		{
			name:       "unknown route",
			method:     "GET",
			path:       "/unknown",
			wantStatus: 404,
			wantBody:   `{"error":"not found"}`,
		},
		{
			name:       "platform missing name",
			method:     "POST",
			path:       "/platform",
			body:       `{"version":"1.0.0"}`,
			wantStatus: 422,
		},
		{
			name:       "platform success",
			method:     "POST",
			path:       "/platform",
			body:       `{"name":"Acme"}`,
			wantStatus: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reqBody io.Reader
			if tt.body != "" {
				reqBody = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, reqBody)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d (body %s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("Expected body %s, got %s", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestGinPlatformMatchesLambdaBody(t *testing.T) {
	router := testGinRouter()

	req := httptest.NewRequest("POST", "/platform", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"message":"Welcome to Acme! Running version 1.0.0."`) {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

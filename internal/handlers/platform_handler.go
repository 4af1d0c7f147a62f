package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"platform-lambda-api/internal/models"
	"platform-lambda-api/pkg/lambda"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	serviceName = "example-python-lambda"

	platformStatus = "active"
	platformUptime = "99.9%"

	metadataProcessedAt = "2024-01-01T00:00:00Z"
	metadataRuntime     = "go1.24"
	metadataRegion      = "us-east-1"
)

// PlatformHandler serves the health, root, and platform endpoints. It
// exposes both gin methods (server mode) and lambda methods (serverless
// mode) over the same response builders, so both modes return identical
// bodies.
type PlatformHandler struct {
	log *logrus.Logger
}

// NewPlatformHandler creates a new platform handler
func NewPlatformHandler(log *logrus.Logger) *PlatformHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PlatformHandler{log: log}
}

func (h *PlatformHandler) buildHealth() *models.HealthResponse {
	return &models.HealthResponse{Status: "healthy", Service: serviceName}
}

func (h *PlatformHandler) buildRoot() *models.RootResponse {
	return &models.RootResponse{Message: "Hello from Python Lambda!"}
}

// buildPlatform constructs the platform result. The message order is a
// contract: base greeting, then a version clause when version is non-empty,
// then a description clause when description is non-empty.
func (h *PlatformHandler) buildPlatform(req *models.PlatformRequest) *models.PlatformResponse {
	message := fmt.Sprintf("Welcome to %s!", req.Name)
	if req.Version != "" {
		message += fmt.Sprintf(" Running version %s.", req.Version)
	}
	if req.Description != "" {
		message += fmt.Sprintf(" Description: %s", req.Description)
	}

	return &models.PlatformResponse{
		Message: message,
		Platform: models.PlatformInfo{
			Name:        req.Name,
			Version:     req.Version,
			Description: req.Description,
			Status:      platformStatus,
			Uptime:      platformUptime,
		},
		Metadata: models.PlatformMetadata{
			ProcessedAt:   metadataProcessedAt,
			LambdaVersion: metadataRuntime,
			Region:        metadataRegion,
		},
	}
}

// Lambda handler methods

func (h *PlatformHandler) HandleHealth(ctx context.Context, req *lambda.Request, _ interface{}) (interface{}, error) {
	return h.buildHealth(), nil
}

func (h *PlatformHandler) HandleRoot(ctx context.Context, req *lambda.Request, _ interface{}) (interface{}, error) {
	return h.buildRoot(), nil
}

func (h *PlatformHandler) HandlePlatform(ctx context.Context, req *lambda.Request, payload interface{}) (interface{}, error) {
	platformReq, ok := payload.(*models.PlatformRequest)
	if !ok {
		return nil, fmt.Errorf("expected platform request payload, got %T", payload)
	}

	h.log.WithFields(logrus.Fields{
		"name":    platformReq.Name,
		"version": platformReq.Version,
	}).Info("Processing platform request")

	return h.buildPlatform(platformReq), nil
}

// Gin handler methods

func (h *PlatformHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildHealth())
}

func (h *PlatformHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildRoot())
}

func (h *PlatformHandler) Platform(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": []string{"request body could not be read"},
		})
		return
	}

	platformReq, err := models.DecodePlatformRequest(raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": models.ValidationDetails(err),
		})
		return
	}

	h.log.WithFields(logrus.Fields{
		"name":    platformReq.Name,
		"version": platformReq.Version,
	}).Info("Processing platform request")

	c.JSON(http.StatusOK, h.buildPlatform(platformReq))
}

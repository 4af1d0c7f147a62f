package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"platform-lambda-api/internal/models"
	"platform-lambda-api/pkg/lambda"
)

// bindPlatform adapts the model-level decode into the dispatcher's
// validation capability.
func bindPlatform(raw []byte) (interface{}, *lambda.DispatchError) {
	req, err := models.DecodePlatformRequest(raw)
	if err != nil {
		return nil, lambda.NewValidationFailed(models.ValidationDetails(err)...)
	}
	return req, nil
}

// LambdaRoutes builds the route table for the serverless dispatcher:
// explicit (method, path, handler, bind) tuples, constructed once at process
// start.
func LambdaRoutes(h *PlatformHandler) []lambda.Route {
	return []lambda.Route{
		{Method: "GET", Path: "/health", Handler: h.HandleHealth},
		{Method: "GET", Path: "/", Handler: h.HandleRoot},
		{Method: "POST", Path: "/platform", Handler: h.HandlePlatform, Bind: bindPlatform},
	}
}

// SetupRoutes configures the same routes on a gin engine for server mode
func SetupRoutes(router *gin.Engine, h *PlatformHandler) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.Health)
	router.GET("/", h.Root)
	router.POST("/platform", h.Platform)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "not found"})
	})
}

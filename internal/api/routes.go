package api

import (
	"net/http"

	"fitforge/plan-generator/internal/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP surface. The service owns a single generation
// endpoint; everything else (onboarding, persistence) belongs to other
// services.
func SetupRoutes(router *gin.Engine, authCfg config.AuthConfig, planHandler *PlanHandler) {
	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	apiV1.Use(AuthMiddleware(authCfg))
	{
		planGroup := apiV1.Group("/plans")
		{
			planGroup.POST("/generate", planHandler.GeneratePlan)
		}
	}
}

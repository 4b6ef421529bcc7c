package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const healthMessage = "Ad approval service is running"

// @Summary Health check
// @Description Liveness probe. Does not touch the database or Stripe.
// @Tags health
// @Produce plain
// @Success 200 {string} string "Ad approval service is running"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, healthMessage)
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"hotelbooking/utils"

	"github.com/gin-gonic/gin"
)

// NewHealthHandler reports the state of the backing services. Degraded
// answers 503 so load balancers can act on it.
func NewHealthHandler(checks map[string]utils.HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := utils.CheckHealth(ctx, checks)
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}

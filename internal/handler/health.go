package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/travelpay/internal/server"
)

// Welcome greets API browsers at the root path.
func (h *Handler) Welcome(c *gin.Context) {
	server.RespondOK(c, gin.H{"message": "Welcome to the TravelPay API"})
}

// Health reports service and database health. A failed ping degrades the
// response to 503 so load balancers stop routing here.
func (h *Handler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.log.Warn("health check failed", map[string]interface{}{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "down",
		})
		return
	}
	server.RespondOK(c, gin.H{
		"status":   "ok",
		"database": "up",
	})
}

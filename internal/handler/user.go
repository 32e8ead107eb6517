package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/travelpay/internal/server"
	"github.com/kbukum/travelpay/internal/server/middleware"
)

// Me returns the authenticated user's public view.
func (h *Handler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	server.RespondOK(c, user.Public())
}

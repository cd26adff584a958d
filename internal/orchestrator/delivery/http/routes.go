package http

import (
	"github.com/gin-gonic/gin"

	"a2a-orchestrator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Only
// the turn endpoint is rate limited; session management is cheap.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.GET("/sessions", h.Sessions)
		chat.DELETE("/sessions/:id", h.DeleteSession)
	}
}

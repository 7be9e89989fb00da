package http

import (
	"github.com/gin-gonic/gin"

	"todo-chatbot/internal/middleware"
)

// RegisterRoutes maps the chat endpoint. Chat traffic is rate limited
// per source.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}

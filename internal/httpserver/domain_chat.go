package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "todo-chatbot/internal/chat/delivery/http"
	"todo-chatbot/internal/middleware"
)

// setupChatDomain registers the chat endpoint on the API group.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.orchestrator)

	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered at POST /api/v1/chat")
	return nil
}

package http

import (
	"github.com/gin-gonic/gin"

	"todo-chatbot/pkg/response"
)

// Chat godoc
// @Summary     Chat with the task assistant
// @Description Processes one user message: the assistant replies and may execute task tools. Without a conversation_id a new conversation is created and both turns are persisted.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if req.ConversationID != "" {
		out := h.orch.ProcessMessage(ctx, req.scope(), req.Message, req.ConversationID)
		response.OK(c, h.newChatResp(out, ""))
		return
	}

	out, err := h.orch.RunConversation(ctx, req.scope(), req.Message, req.ConversationTitle)
	if err != nil {
		h.l.Errorf(ctx, "orch.RunConversation: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(out.ProcessOutput, out.ConversationTitle))
}

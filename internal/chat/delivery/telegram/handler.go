package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"todo-chatbot/internal/model"
	pkgResponse "todo-chatbot/pkg/response"
	pkgTelegram "todo-chatbot/pkg/telegram"
)

const (
	startReply = "👋 Welcome to your *Task Assistant*!\n\nJust tell me what you need in plain English or Hindi:\n• 📝 \"Add a task to buy groceries\"\n• 📋 \"Show my pending tasks\"\n• ✔️ \"Mark task 1 as done\"\n\n_I'll keep your list organized for you._"
	helpReply  = "*How to use:*\n\nTalk to me naturally, for example:\n`Add a high priority task to call the bank tomorrow`\n`Mere pending kaam dikhao`\n`Task 2 delete karo`\n\nI can add, list, complete, update and delete your tasks."
	errReply   = "Something went wrong while handling your request. Please try again."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook
// updates. It responds with HTTP 200 immediately and processes the
// message in a background goroutine; Telegram expects an ack within a
// few seconds while one chat turn can take much longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races
	// on the gin context.
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled right
		// after the ack below.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, errReply)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, startReply, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, helpReply, "Markdown")
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	out, err := h.orch.RunConversation(ctx, sc, msg.Text, "")
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: RunConversation failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, errReply)
	}

	return h.bot.SendMessage(msg.Chat.ID, out.ResponseText)
}

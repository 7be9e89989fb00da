package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"todo-chatbot/internal/agent"
	convRepo "todo-chatbot/internal/conversation/repository"
	"todo-chatbot/internal/model"
	"todo-chatbot/internal/oracle"
)

var greetingPhrases = []string{"hello", "hi", "hey"}

// ProcessMessage handles one user message within an optional existing
// conversation. It never fails: every internal error degrades to an
// apologetic reply so the caller always has text to show.
func (o *Orchestrator) ProcessMessage(ctx context.Context, sc model.Scope, userMessage, conversationID string) (out ProcessOutput) {
	out = ProcessOutput{
		ToolResults:    []agent.ExecutedTool{},
		UserID:         sc.UserID,
		ConversationID: conversationID,
	}

	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, LogMsgRecoveredPanic, r)
			out = o.degraded(sc, userMessage, conversationID, fmt.Errorf("%v", r))
		}
	}()

	messages := []oracle.Message{{Role: oracle.RoleSystem, Content: SystemPromptAgent}}

	if conversationID != "" {
		history, err := o.convRepo.ListMessages(ctx, convRepo.ListMessagesOptions{
			ConversationID: conversationID,
			Limit:          MaxSessionHistory,
		})
		if err != nil {
			o.l.Errorf(ctx, LogMsgHistoryError, err)
			return o.degraded(sc, userMessage, conversationID, err)
		}
		for _, msg := range history {
			role := oracle.RoleAssistant
			if msg.Role == model.ChatRoleUser {
				role = oracle.RoleUser
			}
			messages = append(messages, oracle.Message{Role: role, Content: msg.Content})
		}
	}

	messages = append(messages, oracle.Message{Role: oracle.RoleUser, Content: userMessage})

	reply, err := o.oracle.Chat(ctx, &oracle.Request{
		Messages:    messages,
		Tools:       o.registry.ToDefinitions(),
		Temperature: o.temperature,
	})
	if err != nil {
		o.l.Errorf(ctx, LogMsgOracleError, err)
		return o.degraded(sc, userMessage, conversationID, err)
	}

	for _, tc := range reply.ToolCalls {
		o.l.Infof(ctx, LogMsgExecutingToolCall, tc.Name, tc.Parameters)
		result := o.dispatcher.Execute(ctx, tc.Name, tc.Parameters, sc)
		out.ToolResults = append(out.ToolResults, agent.ExecutedTool{
			ToolName:  tc.Name,
			Arguments: tc.Parameters,
			Result:    result,
		})
	}

	text := composeResponse(reply.Text, out.ToolResults)
	if strings.TrimSpace(text) == "" {
		if isGreeting(userMessage) {
			text = FallbackGreeting
		} else {
			text = FallbackReceived
		}
	}

	out.ResponseText = text
	out.HasToolsExecuted = len(out.ToolResults) > 0
	return out
}

// RunConversation creates a conversation record, processes the message
// and persists both turns. The assistant turn carries an appendix with
// the raw tool results so history retains what actually happened.
func (o *Orchestrator) RunConversation(ctx context.Context, sc model.Scope, userMessage, conversationTitle string) (ConversationOutput, error) {
	if conversationTitle == "" {
		conversationTitle = defaultTitle(userMessage)
	}

	conv, err := o.convRepo.CreateConversation(ctx, convRepo.CreateConversationOptions{
		UserID: sc.UserID,
		Title:  conversationTitle,
	})
	if err != nil {
		return ConversationOutput{}, err
	}

	result := o.ProcessMessage(ctx, sc, userMessage, conv.ID)
	result.ConversationID = conv.ID

	if _, err := o.convRepo.CreateMessage(ctx, convRepo.CreateMessageOptions{
		ConversationID: conv.ID,
		Role:           model.ChatRoleUser,
		Content:        userMessage,
	}); err != nil {
		return ConversationOutput{}, err
	}

	assistantContent := result.ResponseText
	if len(result.ToolResults) > 0 {
		parts := make([]string, 0, len(result.ToolResults))
		for _, tr := range result.ToolResults {
			parts = append(parts, fmt.Sprintf("%s(%v): %s", tr.ToolName, tr.Arguments, tr.Result.Message))
		}
		assistantContent += "\n\nTool Results: " + strings.Join(parts, "; ")
	}

	if _, err := o.convRepo.CreateMessage(ctx, convRepo.CreateMessageOptions{
		ConversationID: conv.ID,
		Role:           model.ChatRoleAssistant,
		Content:        assistantContent,
	}); err != nil {
		return ConversationOutput{}, err
	}

	return ConversationOutput{
		ProcessOutput:     result,
		ConversationTitle: conv.Title,
	}, nil
}

func (o *Orchestrator) degraded(sc model.Scope, userMessage, conversationID string, err error) ProcessOutput {
	text := fmt.Sprintf(ErrMsgProcessFailed, err)
	if strings.TrimSpace(userMessage) == "" {
		text = FallbackEmptyMessage
	} else if isGreeting(userMessage) {
		text = FallbackGreeting
	}

	return ProcessOutput{
		ResponseText:   text,
		ToolResults:    []agent.ExecutedTool{},
		UserID:         sc.UserID,
		ConversationID: conversationID,
	}
}

func isGreeting(message string) bool {
	lower := strings.ToLower(message)
	for _, g := range greetingPhrases {
		if strings.Contains(lower, g) {
			return true
		}
	}
	return false
}

// defaultTitle derives a session title from the first message.
func defaultTitle(userMessage string) string {
	runes := []rune(userMessage)
	if len(runes) > ConversationTitleLen {
		runes = runes[:ConversationTitleLen]
	}
	return fmt.Sprintf("Conversation with %s...", string(runes))
}

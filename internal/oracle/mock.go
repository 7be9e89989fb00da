package oracle

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"todo-chatbot/internal/agent"
	"todo-chatbot/internal/intent"
	pkgLog "todo-chatbot/pkg/log"
)

var greetingWords = []string{
	"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "namaste", "namaskar",
}

var helpWords = []string{
	"help", "what can you do", "assist", "capabilities", "क्या कर सकते", "mujhe madad",
}

var addHintActionWords = []string{"add", "create", "make", "new", "nayi", "banana"}
var addHintNounWords = []string{"task", "todo", "item", "kaam", "work"}

var greetingResponses = []string{
	"Hello! 👋 I'm your personal task assistant. I'm here to help you stay organized and productive. What can I help you with today?",
	"Namaste! 🙏 Great to see you! I'm ready to help you manage your tasks and get things done. What's on your mind?",
	"Hi there! 😊 I'm your task management buddy. Ready to help you tackle your to-do list! What would you like?",
	"असलाम-अलैकुम! 👋 Hello! I'm here to assist with your tasks. What can I do for you?",
}

var helpResponses = []string{
	"I'm your personal task management assistant! 📝 I can help you:\n\n✅ Add new tasks with details\n📋 View your task list\n✔️ Mark tasks as complete\n✏️ Update task information\n🗑️ Delete tasks you no longer need\n\nJust tell me what you'd like to do in natural language!",
	"Great question! I'm here to make task management effortless for you. I can:\n\n• Create new tasks with priorities and due dates\n• Show you all your tasks or filter by status\n• Help you complete tasks and celebrate your progress\n• Update task details when things change\n• Remove tasks you no longer need\n\nTry saying something like 'Add a task to call mom' or 'Show me my pending tasks'!",
}

var addHintResponses = []string{
	"Absolutely! I'd love to help you add a new task. 📝 What task would you like me to create for you? You can include details like priority or due date if you'd like!",
	"Perfect! Let's get that task added to your list. ✨ What's the task you want to create? Feel free to give me as much detail as you want!",
}

var genericResponseFormats = []string{
	"I understand you said: '%s' 💭 I'm here to help you manage your tasks effectively! You can ask me to add, view, complete, update, or delete tasks. What would you like to do?",
	"Thanks for your message: '%s' 😊 I'm your task management assistant! I can help you stay organized and productive. What task-related help do you need?",
	"Got it: '%s' 🎯 I'm ready to help you with your tasks! Whether you want to add something new, check your list, or update existing tasks, just let me know!",
}

const fallbackResponse = "I'm your AI assistant for task management. How can I help you today?"

// MockOracle is a fully offline oracle. It classifies the latest user
// message with the keyword detector and synthesizes the tool calls a
// live model would propose. Active whenever no provider key is
// configured, so the whole system runs without network access.
type MockOracle struct {
	detector *intent.Detector
	l        pkgLog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMock creates a mock oracle.
func NewMock(detector *intent.Detector, l pkgLog.Logger) *MockOracle {
	return &MockOracle{
		detector: detector,
		l:        l,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Name implements Oracle.
func (m *MockOracle) Name() string {
	return "mock"
}

// Chat implements Oracle. It never fails and never returns empty text.
func (m *MockOracle) Chat(ctx context.Context, req *Request) (*Reply, error) {
	original := lastUserMessage(req.Messages)
	lower := strings.ToLower(strings.TrimSpace(original))

	it := m.detector.Detect(original)

	var text string
	var toolCalls []agent.ToolCall

	switch it.Tag {
	case intent.TagAddTask:
		title, _ := it.Slots["title"].(string)
		toolCalls = []agent.ToolCall{{
			Name: "add_task",
			Parameters: map[string]any{
				"title":       title,
				"description": it.Slots["description"],
				"priority":    it.Slots["priority"],
				"due_date":    it.Slots["due_date"],
			},
		}}
		text = fmt.Sprintf("Great! I'm adding a task for you: '%s'. Let me create this for you.", title)

	case intent.TagListTasks:
		status, _ := it.Slots["status"].(string)
		toolCalls = []agent.ToolCall{{
			Name:       "list_tasks",
			Parameters: map[string]any{"status": status},
		}}
		statusText := "all your"
		switch status {
		case "pending":
			statusText = "pending"
		case "completed":
			statusText = "completed"
		}
		text = fmt.Sprintf("Let me fetch %s tasks for you!", statusText)

	case intent.TagCompleteTask:
		taskID, _ := it.Slots["task_id"].(int64)
		toolCalls = []agent.ToolCall{{
			Name: "complete_task",
			Parameters: map[string]any{
				"task_id":   taskID,
				"completed": true,
			},
		}}
		text = fmt.Sprintf("Excellent! I'm marking task %d as complete. Great job!", taskID)

	case intent.TagDeleteTask:
		taskID, _ := it.Slots["task_id"].(int64)
		toolCalls = []agent.ToolCall{{
			Name:       "delete_task",
			Parameters: map[string]any{"task_id": taskID},
		}}
		text = fmt.Sprintf("I'm deleting task %d for you.", taskID)

	case intent.TagUpdateTask:
		taskID, _ := it.Slots["task_id"].(int64)
		params := map[string]any{"task_id": taskID}
		if fields, ok := it.Slots["fields"].(map[string]any); ok {
			for k, v := range fields {
				params[k] = v
			}
		}
		toolCalls = []agent.ToolCall{{
			Name:       "update_task",
			Parameters: params,
		}}
		text = fmt.Sprintf("I'm updating task %d with the new information.", taskID)

	default:
		text = m.generalResponse(lower, original)
	}

	if strings.TrimSpace(text) == "" {
		text = fallbackResponse
	}

	m.l.Debugf(ctx, "mock oracle replied with %d tool call(s)", len(toolCalls))

	return &Reply{
		Text:         text,
		ToolCalls:    toolCalls,
		FinishReason: "COMPLETE",
	}, nil
}

func (m *MockOracle) generalResponse(lower, original string) string {
	switch {
	case containsAny(lower, greetingWords):
		return m.pick(greetingResponses)
	case containsAny(lower, helpWords):
		return m.pick(helpResponses)
	case containsAny(lower, addHintActionWords) && containsAny(lower, addHintNounWords):
		return m.pick(addHintResponses)
	default:
		return fmt.Sprintf(m.pick(genericResponseFormats), original)
	}
}

func (m *MockOracle) pick(pool []string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pool[m.rng.Intn(len(pool))]
}

func lastUserMessage(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i].Content
		}
	}
	if len(messages) > 0 {
		return messages[len(messages)-1].Content
	}
	return ""
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

package agent

import (
	"context"
	"fmt"

	"todo-chatbot/internal/model"
	"todo-chatbot/pkg/log"
)

// Dispatcher validates and executes tool calls against the registry.
// It is the failure boundary for tool execution: whatever a tool does,
// Execute always returns a ToolResult, never an error or a panic.
type Dispatcher struct {
	registry *ToolRegistry
	l        log.Logger
}

// NewDispatcher creates a Dispatcher over the given registry.
func NewDispatcher(registry *ToolRegistry, l log.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		l:        l,
	}
}

// Execute runs one tool call on behalf of sc. Any user identity present
// in the arguments is discarded: tools only ever act on the
// dispatcher-provided caller scope, so a tool can never touch another
// user's tasks via a caller-supplied override.
func (d *Dispatcher) Execute(ctx context.Context, name string, args map[string]interface{}, sc model.Scope) (result ToolResult) {
	defer func() {
		if r := recover(); r != nil {
			d.l.Errorf(ctx, "dispatcher: tool %s panicked: %v", name, r)
			result = ToolResult{
				Success: false,
				Error:   fmt.Sprint(r),
				Message: fmt.Sprintf("Tool execution failed: %v", r),
			}
		}
	}()

	tool, ok := d.registry.Get(name)
	if !ok {
		msg := fmt.Sprintf("Unknown tool: %s", name)
		d.l.Warnf(ctx, "dispatcher: %s", msg)
		return ToolResult{Success: false, Error: msg, Message: msg}
	}

	if args == nil {
		args = map[string]interface{}{}
	}
	// Identity comes from sc, never from the oracle's arguments.
	delete(args, "user_id")

	if err := validateArgs(tool.Parameters(), args); err != nil {
		d.l.Warnf(ctx, "dispatcher: tool %s rejected arguments: %v", name, err)
		return Failure(err.Error())
	}

	res, err := tool.Execute(ctx, args, sc)
	if err != nil {
		d.l.Errorf(ctx, "dispatcher: tool %s failed: %v", name, err)
		return ToolResult{
			Success: false,
			Error:   err.Error(),
			Message: fmt.Sprintf("Tool execution failed: %s", err.Error()),
		}
	}

	return res
}

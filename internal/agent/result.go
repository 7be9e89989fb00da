package agent

// TaskSummary is the per-task entry exposed by list_tasks results.
type TaskSummary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
	DueDate   string `json:"due_date,omitempty"`
}

// ToolResult is the normalized outcome record returned by every
// executor. The uniform shape is what lets the Composer format results
// generically: on success the tool-specific payload fields are set, on
// failure Error and Message carry a human-readable explanation.
type ToolResult struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Message string        `json:"message,omitempty"`
	TaskID  int64         `json:"task_id,omitempty"`
	Title   string        `json:"title,omitempty"`
	Tasks   []TaskSummary `json:"tasks,omitempty"`
}

// Failure builds a failed ToolResult with the same text in Error and
// Message.
func Failure(msg string) ToolResult {
	return ToolResult{Success: false, Error: msg, Message: msg}
}

// ToolCall is a tool invocation proposed by the oracle or synthesized
// from a detected intent.
type ToolCall struct {
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"`
}

// ExecutedTool pairs a dispatched call with its result, in execution
// order.
type ExecutedTool struct {
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
	Result    ToolResult     `json:"result"`
}

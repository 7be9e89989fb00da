package intent

// Tag classifies a user message into one of the supported task operations.
type Tag string

const (
	TagAddTask      Tag = "add_task"
	TagListTasks    Tag = "list_tasks"
	TagCompleteTask Tag = "complete_task"
	TagDeleteTask   Tag = "delete_task"
	TagUpdateTask   Tag = "update_task"
	TagGeneralQuery Tag = "general_query"
)

// Intent is the transient classification result for one message.
// Slots maps extracted field names to values in the shape the matching
// tool expects; it is recomputed per message and never persisted.
type Intent struct {
	Tag   Tag
	Slots map[string]any
}

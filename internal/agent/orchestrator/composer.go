package orchestrator

import (
	"fmt"
	"strings"

	"todo-chatbot/internal/agent"
)

// composeResponse appends deterministic annotations for successful tool
// executions to the oracle's conversational text, in execution order.
// Failed executions and update_task add nothing here; their outcome is
// still visible in the structured tool results.
func composeResponse(base string, results []agent.ExecutedTool) string {
	var b strings.Builder
	b.WriteString(base)

	for _, tr := range results {
		if !tr.Result.Success {
			continue
		}

		switch tr.ToolName {
		case "list_tasks":
			if len(tr.Result.Tasks) > 0 {
				b.WriteString("\n\nHere are your tasks:\n")
				for _, task := range tr.Result.Tasks {
					status := "[Pending]"
					if task.Completed {
						status = "[Done]"
					}
					priority := task.Priority
					if priority == "" {
						priority = "medium"
					}
					b.WriteString(fmt.Sprintf("  %s Task %d: %s (Priority: %s)\n", status, task.ID, task.Title, priority))
				}
			} else {
				b.WriteString("\n\nYou don't have any tasks yet.")
			}

		case "add_task":
			b.WriteString(fmt.Sprintf("\n\n[Task Created] ID: %d - %s", tr.Result.TaskID, tr.Result.Title))

		case "complete_task":
			b.WriteString(fmt.Sprintf("\n\n[Task Completed] %s", tr.Result.Message))

		case "delete_task":
			// Echoes the id as the oracle sent it, not the store's record.
			b.WriteString(fmt.Sprintf("\n\n[Task Deleted] Task ID %v has been removed.", tr.Arguments["task_id"]))
		}
	}

	return b.String()
}

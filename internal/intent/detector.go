package intent

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Detector classifies free-text messages into task operations using
// priority-ordered keyword rules. It performs no I/O; the injected clock
// exists only so due-date extraction is testable.
type Detector struct {
	now func() time.Time
}

// New creates a Detector using the wall clock.
func New() *Detector {
	return &Detector{now: time.Now}
}

// NewWithClock creates a Detector with a fixed clock for tests.
func NewWithClock(now func() time.Time) *Detector {
	return &Detector{now: now}
}

var (
	titlePrefixRes = buildTitlePrefixRes()
	titleSuffixRe  = regexp.MustCompile(`(?i)(please|kripaya|please add it|add it).*$`)
	digitsRe       = regexp.MustCompile(`\d+`)
)

func buildTitlePrefixRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(titlePrefixWords))
	for _, prefix := range titlePrefixWords {
		res = append(res, regexp.MustCompile(`^(?i).*?`+regexp.QuoteMeta(prefix)+`\s+`))
	}
	return res
}

// Detect classifies a message. Rules are evaluated in a fixed order
// (add, list, complete, delete, update, general) and the first satisfied
// rule wins regardless of how many keyword sets the message touches.
// Detect never fails: unmatched messages fall through to general_query.
func (d *Detector) Detect(text string) Intent {
	lower := strings.ToLower(strings.TrimSpace(text))

	if containsAny(lower, addWords) && containsAny(lower, taskNouns) {
		return Intent{
			Tag: TagAddTask,
			Slots: map[string]any{
				"title":       d.extractTitle(text),
				"description": "",
				"priority":    d.extractPriority(text),
				"due_date":    d.extractDueDate(text),
			},
		}
	}

	if containsAny(lower, listWords) {
		status := "all"
		if containsAny(lower, completedWords) {
			status = "completed"
		} else if containsAny(lower, pendingWords) {
			status = "pending"
		}
		return Intent{
			Tag:   TagListTasks,
			Slots: map[string]any{"status": status},
		}
	}

	if containsAny(lower, completeWords) {
		return Intent{
			Tag: TagCompleteTask,
			Slots: map[string]any{
				"task_id":   d.extractTaskID(text),
				"completed": true,
			},
		}
	}

	if containsAny(lower, deleteWords) {
		return Intent{
			Tag:   TagDeleteTask,
			Slots: map[string]any{"task_id": d.extractTaskID(text)},
		}
	}

	if containsAny(lower, updateWords) {
		return Intent{
			Tag: TagUpdateTask,
			Slots: map[string]any{
				"task_id": d.extractTaskID(text),
				"fields":  d.extractUpdateFields(text),
			},
		}
	}

	return Intent{Tag: TagGeneralQuery, Slots: map[string]any{}}
}

// extractTitle strips known prefix words and trailing filler from the
// lowercased message. The result is therefore lowercase; that matches the
// historical behavior and callers depend on it.
func (d *Detector) extractTitle(text string) string {
	msg := strings.ToLower(text)
	for _, re := range titlePrefixRes {
		msg = re.ReplaceAllString(msg, "")
	}
	msg = titleSuffixRe.ReplaceAllString(msg, "")
	msg = strings.TrimSpace(msg)

	if runes := []rune(msg); len(runes) > MaxTitleLen {
		msg = string(runes[:MaxTitleLen])
	}
	if msg == "" {
		return DefaultTitle
	}
	return msg
}

// extractTaskID returns the first integer literal found anywhere in the
// raw text, defaulting to 1. A message like "meeting at 3 PM" therefore
// yields id 3, even though the number is unrelated to any task.
func (d *Detector) extractTaskID(text string) int64 {
	match := digitsRe.FindString(text)
	if match == "" {
		return DefaultTaskID
	}
	id, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return DefaultTaskID
	}
	return id
}

func (d *Detector) extractPriority(text string) string {
	lower := strings.ToLower(text)
	if containsAny(lower, highPriorityWords) {
		return "high"
	}
	if containsAny(lower, lowPriorityWords) {
		return "low"
	}
	return "medium"
}

// extractDueDate recognizes only the literal today/aaj and tomorrow/kal
// and returns an ISO calendar date, else empty.
func (d *Detector) extractDueDate(text string) string {
	lower := strings.ToLower(text)
	if containsAny(lower, todayWords) {
		return d.now().Format("2006-01-02")
	}
	if containsAny(lower, tomorrowWords) {
		return d.now().AddDate(0, 0, 1).Format("2006-01-02")
	}
	return ""
}

func (d *Detector) extractUpdateFields(text string) map[string]any {
	fields := map[string]any{}
	lower := strings.ToLower(text)

	if containsAny(lower, titleFieldWords) {
		if title := d.extractTitle(text); title != "" {
			fields["title"] = title
		}
	}
	if priority := d.extractPriority(text); priority != "" {
		fields["priority"] = priority
	}
	if due := d.extractDueDate(text); due != "" {
		fields["due_date"] = due
	}
	return fields
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

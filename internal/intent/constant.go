package intent

// Keyword vocabularies for English and Hindi/Hinglish, matched by plain
// substring containment over the lowercased message. The lists overlap on
// purpose ("change" triggers both title extraction and the update rule);
// resolution is positional, the first satisfied rule wins.
var (
	addWords  = []string{"add", "create", "make", "new", "nayi", "naya", "banana", "banao", "add karo", "ek nayi task"}
	taskNouns = []string{"task", "todo", "item", "kaam", "kaam ka", "task ko"}

	listWords      = []string{"list", "show", "display", "view", "mujhe", "mera", "mere", "dikha", "dikhao", "batao", "dekho", "puche"}
	pendingWords   = []string{"pending", "incomplete", "baaki", "baache", "abhi", "awaiting"}
	completedWords = []string{"completed", "done", "finished", "complete", "hoya", "ho gaya", "khatam", "mukammal"}

	completeWords = []string{"complete", "finish", "done", "mark", "tick", "complete karo", "ho gaya", "pura kiya", "khatam"}
	deleteWords   = []string{"delete", "remove", "cancel", "eliminate", "hatao", "nikalo", "uda do", "mita do"}
	updateWords   = []string{"update", "change", "modify", "edit", "alter", "badlo", "change karo", "sudharo"}

	highPriorityWords = []string{"high", "urgent", "acha", "important", "zaruri"}
	lowPriorityWords  = []string{"low", "slow", "kaam", "eventually"}

	titlePrefixWords = []string{"add", "create", "make", "nayi", "naya", "banana", "banao", "task", "todo", "item"}

	todayWords    = []string{"today", "aaj"}
	tomorrowWords = []string{"tomorrow", "kal"}

	titleFieldWords = []string{"title", "name", "change", "new name"}
)

const (
	// DefaultTitle is used when title extraction strips the whole message.
	DefaultTitle = "New Task"

	// MaxTitleLen caps extracted titles.
	MaxTitleLen = 100

	// DefaultTaskID is returned when no integer literal appears in the text.
	DefaultTaskID int64 = 1
)

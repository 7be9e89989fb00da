package orchestrator

import (
	"todo-chatbot/internal/agent"
	convRepo "todo-chatbot/internal/conversation/repository"
	"todo-chatbot/internal/oracle"
	pkgLog "todo-chatbot/pkg/log"
)

// Orchestrator drives one chat turn: it assembles conversation context,
// consults the oracle, dispatches any proposed tool calls and composes
// the final response.
type Orchestrator struct {
	oracle      oracle.Oracle
	registry    *agent.ToolRegistry
	dispatcher  *agent.Dispatcher
	convRepo    convRepo.ConversationRepository
	l           pkgLog.Logger
	temperature float64
}

func New(o oracle.Oracle, registry *agent.ToolRegistry, dispatcher *agent.Dispatcher, cr convRepo.ConversationRepository, l pkgLog.Logger) *Orchestrator {
	return &Orchestrator{
		oracle:      o,
		registry:    registry,
		dispatcher:  dispatcher,
		convRepo:    cr,
		l:           l,
		temperature: DefaultTemperature,
	}
}

// SetTemperature overrides the default sampling temperature. Values
// outside (0, 2] are ignored.
func (o *Orchestrator) SetTemperature(t float64) {
	if t > 0 && t <= 2 {
		o.temperature = t
	}
}

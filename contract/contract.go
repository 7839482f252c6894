//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"bot-chat/flow"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// FlowProvider gives the flow currently driving the conversations, nil when none is active.
type FlowProvider interface {
	Flow() *flow.Flow
}

// FlowSetter replaces the active flow at runtime.
type FlowSetter interface {
	FlowProvider
	SetFlow(f *flow.Flow)
}

// ConversationEngine answers the two inbound destinations of a session.
type ConversationEngine interface {
	Start(ctx context.Context, sessionID string) []string
	OnUserMessage(ctx context.Context, sessionID, text string) []string
	Forget(sessionID string)
}

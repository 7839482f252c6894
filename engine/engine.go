// Package engine walks the active flow for every chat session.
package engine

import (
	"bot-chat/ai"
	"bot-chat/contract"
	"bot-chat/flow"
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

// Engine produces the bot replies of a session.
// Start is called on the init signal, OnUserMessage on every user message.
type Engine struct {
	log      *slog.Logger
	flows    contract.FlowProvider
	states   *ConversationStates
	matcher  KeywordMatcher
	detector ai.IntentDetector
}

func NewEngine(log *slog.Logger, flows contract.FlowProvider, detector ai.IntentDetector) *Engine {
	if detector == nil {
		detector = ai.NoopDetector{}
	}
	return &Engine{
		log:      log,
		flows:    flows,
		states:   NewConversationStates(),
		detector: detector,
	}
}

// Start walks from the start block and returns the messages written until the first wait block.
func (e *Engine) Start(_ context.Context, sessionID string) []string {
	f := e.flows.Flow()
	if f == nil {
		e.log.Warn("No active flow", "session_id", sessionID)
		return nil
	}
	return e.walk(f, sessionID, f.StartBlockID)
}

// OnUserMessage routes the answer of the user from the block the session waits on.
// A session with no known block starts over.
func (e *Engine) OnUserMessage(ctx context.Context, sessionID, text string) []string {
	f := e.flows.Flow()
	if f == nil {
		e.log.Warn("No active flow", "session_id", sessionID)
		return nil
	}
	currentID, ok := e.states.CurrentBlock(sessionID)
	if !ok {
		return e.Start(ctx, sessionID)
	}
	current, ok := f.ByID(currentID)
	if !ok {
		return e.Start(ctx, sessionID)
	}

	var nextID string
	switch current.Type {
	case flow.WaitForResponse:
		nextID = e.matcher.ResolveNext(current, text)
	case flow.DetectResponseIntent:
		nextID = e.resolveIntent(ctx, current, text)
	}
	e.log.Debug("User message routed", "session_id", sessionID, "from", current.ID, "next", nextID)
	return e.walk(f, sessionID, nextID)
}

// Forget drops the conversation state of a closed session.
func (e *Engine) Forget(sessionID string) {
	e.states.Forget(sessionID)
}

func (e *Engine) CurrentBlock(sessionID string) (string, bool) {
	return e.states.CurrentBlock(sessionID)
}

func (e *Engine) Sessions() int {
	return e.states.Len()
}

// walk collects WRITE_MESSAGE texts from nextID and records the wait block it stops on.
// The state is left untouched when the chain ends without a wait block.
func (e *Engine) walk(f *flow.Flow, sessionID, nextID string) []string {
	var out []string
	for steps := 0; nextID != ""; steps++ {
		if steps > len(f.Blocks) {
			e.log.Warn("Flow loops without waiting for the user", "session_id", sessionID, "block", nextID)
			break
		}
		b, ok := f.ByID(nextID)
		if !ok {
			e.log.Warn("Unknown block", "session_id", sessionID, "block", nextID)
			break
		}
		switch {
		case b.Type == flow.WriteMessage:
			if b.Message != "" {
				out = append(out, b.Message)
			}
			nextID = b.Next
		case b.Type.IsWait():
			e.states.SetCurrentBlock(sessionID, b.ID)
			nextID = ""
		default:
			nextID = ""
		}
	}
	return out
}

// resolveIntent handles both shapes of an intent block.
// With intents: detected intent (case-insensitive), then keywords, then fallback.
// With routes: detected intent among the INTENT routes, keyword routes taking over when nothing is detected.
func (e *Engine) resolveIntent(ctx context.Context, block *flow.Block, text string) string {
	if len(block.Intents) > 0 {
		return e.resolveIntentOptions(ctx, block, text)
	}
	if len(block.On) == 0 {
		return ""
	}

	var intent string
	if candidates := block.IntentCandidates(); len(candidates) > 0 {
		intent = e.detect(ctx, text, candidates)
	}
	if intent == "" {
		e.log.Info("Falling back to keywords", "block", block.ID)
		if next := e.matcher.ResolveNext(block, text); next != "" {
			return next
		}
	} else {
		for _, r := range block.On {
			if r.Match != nil && r.Match.Type == flow.Intent && lo.Contains(r.Match.AnyOf, intent) {
				return r.Next
			}
		}
	}
	e.log.Info("No matching route, using fallback", "block", block.ID)
	return e.matcher.ResolveNext(block, text)
}

func (e *Engine) resolveIntentOptions(ctx context.Context, block *flow.Block, text string) string {
	names := lo.FilterMap(block.Intents, func(opt flow.IntentOption, _ int) (string, bool) {
		return opt.Name, opt.Name != ""
	})
	if len(names) > 0 {
		if intent := e.detect(ctx, text, names); intent != "" {
			for _, opt := range block.Intents {
				if opt.Name != "" && strings.EqualFold(opt.Name, intent) {
					return opt.Next
				}
			}
		}
	}

	lower := strings.ToLower(text)
	for _, opt := range block.Intents {
		for _, keyword := range opt.Keywords {
			if strings.TrimSpace(keyword) != "" && strings.Contains(lower, strings.ToLower(keyword)) {
				return opt.Next
			}
		}
	}
	return strings.TrimSpace(block.Fallback)
}

// detect never fails the conversation: detector errors count as no intent.
func (e *Engine) detect(ctx context.Context, text string, candidates []string) string {
	intent, err := e.detector.DetectIntent(ctx, text, candidates)
	if err != nil {
		e.log.Warn("Intent detection failed", "error", err)
		return ""
	}
	intent = strings.TrimSpace(intent)
	if intent == "" {
		e.log.Info("No intent detected", "candidates", len(candidates))
	}
	return intent
}

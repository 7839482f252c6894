// Package flow describes the conversation the bot walks through.
// A flow is loaded from JSON and is read-only once decoded.
package flow

import (
	"bot-chat/errors"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type BlockType string

const (
	// WriteMessage sends its message then moves on to next.
	WriteMessage BlockType = "WRITE_MESSAGE"
	// WaitForResponse stops the walk until the user answers; routes are matched by keyword.
	WaitForResponse BlockType = "WAIT_FOR_RESPONSE"
	// DetectResponseIntent stops the walk until the user answers; the answer is classified by intent.
	DetectResponseIntent BlockType = "DETECT_RESPONSE_INTENT"
)

// IsWait tells whether the walk stops on the block to wait for the user.
func (t BlockType) IsWait() bool {
	return t == WaitForResponse || t == DetectResponseIntent
}

type MatchType string

const (
	Keyword  MatchType = "KEYWORD"
	Intent   MatchType = "INTENT"
	Fallback MatchType = "FALLBACK"
)

var validate = validator.New()

type Meta struct {
	Name string `json:"name"`
}

type Flow struct {
	Meta         *Meta   `json:"meta,omitempty"`
	StartBlockID string  `json:"startBlockId" validate:"required"`
	Blocks       []Block `json:"blocks" validate:"required,min=1,dive"`
}

type Block struct {
	ID       string         `json:"id" validate:"required"`
	Type     BlockType      `json:"type" validate:"required,oneof=WRITE_MESSAGE WAIT_FOR_RESPONSE DETECT_RESPONSE_INTENT"`
	Message  string         `json:"message,omitempty"`
	Next     string         `json:"next,omitempty"`
	On       []Route        `json:"on,omitempty" validate:"omitempty,dive"`
	Intents  []IntentOption `json:"intents,omitempty" validate:"omitempty,dive"`
	Fallback string         `json:"fallback,omitempty"`
}

type Route struct {
	Match *MatchSpec `json:"match,omitempty"`
	Next  string     `json:"next,omitempty"`
}

type MatchSpec struct {
	Type  MatchType `json:"type" validate:"required,oneof=KEYWORD INTENT FALLBACK"`
	AnyOf []string  `json:"anyOf,omitempty"`
}

type IntentOption struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
	Next     string   `json:"next,omitempty"`
}

// Decode parses a flow document. Unknown fields are ignored.
func Decode(data []byte) (Flow, error) {
	var f Flow
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
		return Flow{}, fmt.Errorf("%w: %v", errors.ErrInvalidFlow, err)
	}
	return f, nil
}

// Name returns meta.name, trimmed, or an empty string.
func (f Flow) Name() string {
	if f.Meta == nil {
		return ""
	}
	return strings.TrimSpace(f.Meta.Name)
}

// Validate checks the structure of the flow and that the start block exists.
// Dangling next references are allowed: the walk simply stops on them.
func (f Flow) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidFlow, err)
	}
	seen := make(map[string]struct{}, len(f.Blocks))
	for _, b := range f.Blocks {
		if _, ok := seen[b.ID]; ok {
			return fmt.Errorf("%w: duplicate block id %q", errors.ErrInvalidFlow, b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	if _, ok := seen[f.StartBlockID]; !ok {
		return fmt.Errorf("%w: start block %q not found", errors.ErrInvalidFlow, f.StartBlockID)
	}
	return nil
}

// ByID returns the first block with the given id.
func (f *Flow) ByID(id string) (*Block, bool) {
	if f == nil || id == "" {
		return nil, false
	}
	for i := range f.Blocks {
		if f.Blocks[i].ID == id {
			return &f.Blocks[i], true
		}
	}
	return nil, false
}

// IntentCandidates lists the intent names of a legacy block, the anyOf of every INTENT route.
func (b *Block) IntentCandidates() []string {
	var candidates []string
	for _, r := range b.On {
		if r.Match != nil && r.Match.Type == Intent {
			candidates = append(candidates, r.Match.AnyOf...)
		}
	}
	return candidates
}

package engine

import (
	"bot-chat/flow"
	"strings"
)

// KeywordMatcher picks the route of a block from the words of the user.
type KeywordMatcher struct{}

// ResolveNext returns the next block id: the first KEYWORD route, in definition order,
// whose keyword is contained in the text (case-insensitive), otherwise the first FALLBACK route.
// INTENT routes are ignored. An empty string means no route applies.
func (KeywordMatcher) ResolveNext(block *flow.Block, text string) string {
	if block == nil || len(block.On) == 0 {
		return ""
	}
	lower := strings.ToLower(text)
	for _, r := range block.On {
		if r.Match == nil || r.Match.Type != flow.Keyword {
			continue
		}
		for _, keyword := range r.Match.AnyOf {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return r.Next
			}
		}
	}
	for _, r := range block.On {
		if r.Match != nil && r.Match.Type == flow.Fallback {
			return r.Next
		}
	}
	return ""
}

// Package chatbot answers chat messages by deterministic keyword
// containment, either from the public college knowledge table or from a
// student's own record.
package chatbot

import (
	"strings"

	"github.com/samber/lo"
)

// Normalize trims and lower-cases a message before matching.
func Normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

func containsAny(message string, keywords []string) bool {
	return lo.SomeBy(keywords, func(keyword string) bool {
		return strings.Contains(message, keyword)
	})
}

// PublicRouter answers anonymous visitors from the knowledge table.
type PublicRouter struct {
	entries []KnowledgeEntry
}

func NewPublicRouter() *PublicRouter {
	return &PublicRouter{entries: knowledgeBase}
}

// Answer returns the response of the first topic with a keyword contained
// in message, or the topic menu when nothing matches.
func (r *PublicRouter) Answer(message string) string {
	entry, ok := r.Match(message)
	if !ok {
		return publicFallback
	}
	return entry.Response
}

// Match returns the topic that answers message, if any.
func (r *PublicRouter) Match(message string) (KnowledgeEntry, bool) {
	msg := Normalize(message)
	return lo.Find(r.entries, func(entry KnowledgeEntry) bool {
		return containsAny(msg, entry.Keywords)
	})
}

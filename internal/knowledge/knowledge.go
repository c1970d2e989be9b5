// Package knowledge implements the study assistant responder: a keyword-scored
// lookup over a curated fact base, with canned handling for greetings and
// identity questions.
package knowledge

import (
	"math/rand"
	"strings"
)

// Item is one answerable topic.
type Item struct {
	Keywords []string
	Response string
	Category string
}

// Responder answers free-form questions from the fact base.
type Responder struct {
	items     []Item
	greetings []string
	rand      *rand.Rand
}

// Option configures a Responder.
type Option func(*Responder)

// WithRand sets the random source used to pick greeting replies.
func WithRand(r *rand.Rand) Option {
	return func(res *Responder) { res.rand = r }
}

// New creates a Responder over the default fact base.
func New(opts ...Option) *Responder {
	r := &Responder{
		items: defaultItems,
		greetings: []string{
			"Hello! How can I help you with your studies today?",
			"Hi there! I'm ready to help you learn.",
			"Hey! Ask me anything related to your subjects or homework.",
			"Nice to see you! What topic are you curious about today?",
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

const identityResponse = "I'm a study assistant designed to help students with their studies. I can assist with subjects like math, science, history, geography, English, and general knowledge."

const fallbackResponse = "That's an interesting question! I can help with many topics including Indian history, world history, geography, science, sports, and current affairs. Could you try asking about a specific topic or person? For example: 'Who was Mahatma Gandhi?' or 'What is photosynthesis?'"

// Answer returns the best response for the input. Greetings and identity
// questions are handled before keyword matching; keyword scores are weighted
// by keyword length so specific phrases beat generic ones. With no match at
// all, a guidance fallback is returned.
func (r *Responder) Answer(input string) string {
	lower := strings.ToLower(input)

	for _, greet := range []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"} {
		if containsWord(lower, greet) {
			return r.greeting()
		}
	}

	if strings.Contains(lower, "who are you") || strings.Contains(lower, "what are you") {
		return identityResponse
	}

	var best *Item
	bestScore := 0
	for i := range r.items {
		score := 0
		for _, kw := range r.items[i].Keywords {
			if strings.Contains(lower, kw) {
				score += len(kw)
			}
		}
		if score > bestScore {
			bestScore = score
			best = &r.items[i]
		}
	}
	if best != nil {
		return best.Response
	}
	return fallbackResponse
}

func (r *Responder) greeting() string {
	if r.rand != nil {
		return r.greetings[r.rand.Intn(len(r.greetings))]
	}
	return r.greetings[rand.Intn(len(r.greetings))]
}

// Categories lists the distinct topic categories in the fact base.
func (r *Responder) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range r.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

// containsWord reports whether s contains w as a whole word, so "hi" does not
// match inside "shivaji" or "history".
func containsWord(s, w string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], w)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(w)
		beforeOK := start == 0 || !isWordChar(s[start-1])
		afterOK := end == len(s) || !isWordChar(s[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
		if idx >= len(s) {
			return false
		}
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}

package chatbot

import (
	"fmt"
	"strings"

	"supplierhub-backend/internal/models"
	"supplierhub-backend/internal/store"
)

// The chatbot is keyword matching over the supplier query engine, no model
// call involved. Intents map onto features that actually exist here.

type ActionType string

const (
	ActionSearchSupplier  ActionType = "search_supplier"
	ActionSuggestSupplier ActionType = "suggest_supplier"
	ActionGetStats        ActionType = "get_stats"
	ActionHelp            ActionType = "help"
	ActionInfoRequest     ActionType = "info_request"
)

type Action struct {
	Type   ActionType     `json:"type"`
	Params map[string]any `json:"params"`
}

type Reply struct {
	Message string `json:"message"`
	Action  Action `json:"action"`
}

var searchKeywords = []string{"find", "search", "show me", "list", "which suppliers"}
var suggestKeywords = []string{"suggest", "recommend", "what supplier", "which supplier should"}
var statsKeywords = []string{"stats", "statistics", "how many", "total suppliers"}
var helpKeywords = []string{"help", "what can you do", "how do i"}

// Category and location vocabularies for parameter extraction. Categories are
// matched as substrings, so "steel" also hits "Steel & Metal".
var categoryVocab = []string{"lumber", "concrete", "electrical", "plumbing", "hardware", "fixtures", "steel", "materials", "equipment"}
var locationVocab = []string{"california", "texas", "florida", "new york", "georgia", "ohio", "illinois"}

// ParseIntent classifies the message and extracts search parameters.
func ParseIntent(message string) Action {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, searchKeywords):
		return Action{Type: ActionSearchSupplier, Params: extractSearchParams(lower)}
	case containsAny(lower, suggestKeywords):
		return Action{Type: ActionSuggestSupplier, Params: extractSearchParams(lower)}
	case containsAny(lower, statsKeywords):
		return Action{Type: ActionGetStats, Params: map[string]any{}}
	case containsAny(lower, helpKeywords):
		return Action{Type: ActionHelp, Params: map[string]any{}}
	default:
		return Action{Type: ActionInfoRequest, Params: map[string]any{"query": message}}
	}
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func extractSearchParams(lower string) map[string]any {
	params := map[string]any{}

	for _, cat := range categoryVocab {
		if strings.Contains(lower, cat) {
			params["category"] = cat
			break
		}
	}
	for _, loc := range locationVocab {
		if strings.Contains(lower, loc) {
			params["location"] = loc
			break
		}
	}
	if strings.Contains(lower, "highly rated") || strings.Contains(lower, "top rated") {
		params["min_rating"] = 4.5
	} else if strings.Contains(lower, "good") {
		params["min_rating"] = 4.0
	}
	if strings.Contains(lower, "verified") {
		params["verified_only"] = true
	}

	return params
}

// Respond classifies the message, executes the action against the supplier
// store and renders a text answer.
func Respond(message string) Reply {
	action := ParseIntent(message)

	switch action.Type {
	case ActionSearchSupplier, ActionSuggestSupplier:
		return Reply{Message: renderSearch(action), Action: action}
	case ActionGetStats:
		return Reply{Message: renderStats(), Action: action}
	case ActionHelp:
		return Reply{
			Message: "I can search suppliers for you (try \"find steel suppliers in Texas\"), " +
				"suggest highly rated ones, or give you store statistics (\"how many suppliers do we have?\").",
			Action: action,
		}
	default:
		return Reply{
			Message: "I didn't catch that. Ask me to find or suggest suppliers, or ask for statistics.",
			Action:  action,
		}
	}
}

func renderSearch(action Action) string {
	filter := store.SupplierFilter{Limit: 5}
	if v, ok := action.Params["category"].(string); ok {
		filter.Search = v
	}
	if v, ok := action.Params["location"].(string); ok {
		filter.Location = v
	}
	if v, ok := action.Params["min_rating"].(float64); ok {
		filter.MinRating = &v
	}
	if v, ok := action.Params["verified_only"].(bool); ok {
		filter.VerifiedOnly = v
	}

	matches, total, err := store.Suppliers.Query(filter)
	if err != nil || total == 0 {
		return "I couldn't find any suppliers matching that. Try a different category or location."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d matching supplier(s):\n", total)
	for _, s := range matches {
		b.WriteString(describeSupplier(s))
		b.WriteByte('\n')
	}
	if total > len(matches) {
		fmt.Fprintf(&b, "...and %d more.", total-len(matches))
	}
	return strings.TrimRight(b.String(), "\n")
}

func describeSupplier(s models.Supplier) string {
	verified := ""
	if s.WalmartVerified {
		verified = ", Walmart verified"
	}
	return fmt.Sprintf("- %s (%s, %s) — rated %.1f%s", s.Name, s.Category, s.Location, s.Rating, verified)
}

func renderStats() string {
	stats := store.Suppliers.Stats()
	if stats.Total == 0 {
		return "The store is empty right now. Import a supplier sheet to get started."
	}
	return fmt.Sprintf(
		"There are %d suppliers across %d categories. %d are Walmart verified. Average rating is %.2f and average AI score is %.1f.",
		stats.Total, len(stats.Categories), stats.Verified, stats.AverageRating, stats.AverageAIScore,
	)
}

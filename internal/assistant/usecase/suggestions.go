package usecase

import "strings"

const suggestionCount = 4

var schedulingTerms = []string{"schedule", "calendar", "meeting", "appointment", "event", "book", "plan"}

var dayTerms = []string{"today", "tomorrow"}

var (
	schedulingSuggestions = []string{
		"Show my schedule for this week",
		"Find a free slot tomorrow afternoon",
		"Add a 30-minute focus block",
		"Set up a weekly team sync",
		"Move my next meeting to Friday",
		"Block time for lunch every day",
	}
	daySuggestions = []string{
		"What's on my calendar today?",
		"Plan a balanced day for tomorrow",
		"Add a workout tomorrow morning",
		"Schedule a break this afternoon",
		"How busy am I tomorrow?",
		"Remind me to review my goals tonight",
	}
	afterCreateSuggestions = []string{
		"Add another event",
		"Create a reminder before this event",
		"Schedule a follow-up next week",
		"Show my upcoming events",
		"Change the color of this event",
		"Plan some downtime afterwards",
	}
	defaultSuggestions = []string{
		"How balanced is my week?",
		"Schedule a team meeting tomorrow at 2pm",
		"Suggest ways to reduce stress",
		"Plan a workout this week",
		"What should I focus on today?",
		"Block time for deep work",
	}
)

// suggestionList picks the fixed list matching the message.
func suggestionList(message string, eventCreated bool) []string {
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, schedulingTerms):
		return schedulingSuggestions
	case containsAny(lower, dayTerms):
		return daySuggestions
	case eventCreated:
		return afterCreateSuggestions
	default:
		return defaultSuggestions
	}
}

func (uc *implUseCase) suggestions(message string, eventCreated bool) []string {
	list := suggestionList(message, eventCreated)
	out := make([]string, len(list))
	copy(out, list)
	uc.shuffle(out)
	return out[:suggestionCount]
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/pkg/log"
)

func TestSuggestionList(t *testing.T) {
	tests := []struct {
		name    string
		message string
		created bool
		want    []string
	}{
		{name: "scheduling wins over day terms", message: "Book a call TOMORROW", want: schedulingSuggestions},
		{name: "scheduling wins over creation", message: "add a meeting", created: true, want: schedulingSuggestions},
		{name: "calendar term", message: "what's in my calendar", want: schedulingSuggestions},
		{name: "today", message: "How was today?", want: daySuggestions},
		{name: "tomorrow beats creation", message: "gym tomorrow 7am", created: true, want: daySuggestions},
		{name: "created", message: "dentist at 10", created: true, want: afterCreateSuggestions},
		{name: "default", message: "I feel tired", want: defaultSuggestions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestionList(tt.message, tt.created))
		})
	}
}

func TestSuggestions_ShuffledCopyOfFour(t *testing.T) {
	reverse := func(s []string) {
		for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
			s[i], s[j] = s[j], s[i]
		}
	}
	uc := New(log.NewNop(), &mockGemini{}, &mockRepo{}, WithShuffler(reverse)).(*implUseCase)

	got := uc.suggestions("I feel tired", false)

	n := len(defaultSuggestions)
	assert.Equal(t, []string{defaultSuggestions[n-1], defaultSuggestions[n-2], defaultSuggestions[n-3], defaultSuggestions[n-4]}, got)
	// the fixed list itself is untouched
	assert.Equal(t, "How balanced is my week?", defaultSuggestions[0])
}

func TestSuggestions_RandomAlwaysFourFromList(t *testing.T) {
	uc := New(log.NewNop(), &mockGemini{}, &mockRepo{}).(*implUseCase)

	for i := 0; i < 20; i++ {
		got := uc.suggestions("what about today", false)
		require.Len(t, got, 4)
		for _, s := range got {
			assert.Contains(t, daySuggestions, s)
		}
	}
}

func TestChat_SuggestionsAfterCreation(t *testing.T) {
	reply := `EVENT_CREATE: {"title": "Dentist", "start_time": "2025-06-13T10:00:00.000Z", "end_time": "2025-06-13T11:00:00.000Z"}`
	uc := newTestUseCase(&mockGemini{reply: reply}, &mockRepo{})

	out, err := uc.Chat(context.Background(), assistant.ChatInput{Message: "dentist friday at 10", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, afterCreateSuggestions[:4], out.Suggestions)
}

func TestNewGenerationContext(t *testing.T) {
	uc := New(log.NewNop(), nil, &mockRepo{}, WithClock(fixedClock)).(*implUseCase)

	gc := uc.newGenerationContext()

	assert.Equal(t, 2025, gc.Year)
	assert.Equal(t, 10, gc.Day)
	assert.Equal(t, "2025-06-10T09:00:00.000Z", gc.ISO)
	assert.Equal(t, "Tuesday, June 10, 2025", gc.HumanDate)
	assert.Equal(t, "9:00 AM", gc.HumanTime)
	assert.Equal(t, "2025-06-10", gc.Today)
	assert.Equal(t, "2025-06-11", gc.Tomorrow)
	assert.Equal(t, "2025-06-17", gc.NextWeek)
	assert.Equal(t, "2025-06-13", gc.NextWeekdayDate)
}

package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gemini"
)

const directiveMarker = "EVENT_CREATE:"

const systemPromptHeader = `You are a friendly calendar and life-balance assistant.
You can:
- create calendar events from natural-language requests
- answer questions about the user's schedule and habits
- give practical advice on balancing work, health, social life and rest`

// buildPrompt renders the system prompt for one request.
func (uc *implUseCase) buildPrompt(gc assistant.GenerationContext, lifeBalance map[string]any) string {
	var sb strings.Builder
	sb.WriteString(systemPromptHeader)

	sb.WriteString("\n\nCURRENT DATE AND TIME:\n")
	fmt.Fprintf(&sb, "- Today is %s.\n", gc.HumanDate)
	fmt.Fprintf(&sb, "- The current time is %s (UTC).\n", gc.HumanTime)
	fmt.Fprintf(&sb, "- The current year is %d. Always use %d unless the user names another year.\n", gc.Year, gc.Year)
	fmt.Fprintf(&sb, "- ISO timestamp: %s\n", gc.ISO)

	sb.WriteString("\nCREATING EVENTS:\n")
	sb.WriteString("When the user asks you to create, schedule or book something, include exactly one line in this format:\n")
	sb.WriteString(directiveMarker + ` {"title": "...", "description": "...", "start_time": "YYYY-MM-DDTHH:MM:SS.000Z", "end_time": "YYYY-MM-DDTHH:MM:SS.000Z", "location": "...", "color": "blue|purple|green|orange|red|pink"}`)
	sb.WriteString("\nRules:\n")
	sb.WriteString("- The JSON object must be on the same line as " + directiveMarker + "\n")
	sb.WriteString("- title, start_time and end_time are required; end_time must be after start_time\n")
	sb.WriteString("- Times are UTC. If no duration is given, make the event one hour long\n")
	sb.WriteString("- Only emit the line when the user wants an event created\n")

	sb.WriteString("\nEXAMPLES:\n")
	uc.writeExample(&sb, `"Lunch with Sam today at 1pm"`, "Lunch with Sam", gc.Now, 13, "green")
	if tomorrow, err := time.Parse(dayLayout, gc.Tomorrow); err == nil {
		uc.writeExample(&sb, `"Schedule a team meeting tomorrow at 2pm"`, "Team meeting", tomorrow, 14, "blue")
	}
	if weekday, err := time.Parse(dayLayout, gc.NextWeekdayDate); err == nil {
		req := fmt.Sprintf(`"Dentist appointment next %s at 10am"`, gc.NextWeekday)
		uc.writeExample(&sb, req, "Dentist appointment", weekday, 10, "red")
	}

	if len(lifeBalance) > 0 {
		if data, err := json.MarshalIndent(lifeBalance, "", "  "); err == nil {
			sb.WriteString("\nUSER'S LIFE BALANCE DATA:\n")
			sb.Write(data)
			sb.WriteString("\nUse these metrics when giving advice.\n")
		}
	}

	return sb.String()
}

func (uc *implUseCase) writeExample(sb *strings.Builder, request, title string, day time.Time, hour int, color string) {
	start := uc.dateMath.At(day, hour, 0)
	fmt.Fprintf(sb, "User: %s\n%s {\"title\": %q, \"description\": \"\", \"start_time\": %q, \"end_time\": %q, \"location\": \"\", \"color\": %q}\n",
		request, directiveMarker, title,
		datemath.FormatISO(start), datemath.FormatISO(start.Add(time.Hour)), color)
}

// newGenerationRequest wraps the prompt and the user message into a single
// user turn with the fixed sampling settings.
func newGenerationRequest(prompt, message string) *gemini.Request {
	return &gemini.Request{
		Messages: []gemini.Content{{
			Role:  gemini.RoleUser,
			Parts: []gemini.Part{{Text: prompt + "\n\nUser: " + message}},
		}},
		Generation: gemini.GenerationConfig{
			Temperature:     temperature,
			TopK:            topK,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
	}
}

package usecase

import (
	"encoding/json"
	"strings"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

// rawDirective is the JSON object following the marker, before validation.
type rawDirective struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Color       string `json:"color"`
}

// directiveSpan locates a directive in a reply: reply[Start:End] is the
// marker plus its JSON object.
type directiveSpan struct {
	Start int
	End   int
	Raw   rawDirective
}

// eventDirective is a validated directive with year-corrected UTC times.
type eventDirective struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Color       model.Color
}

// hasDirective reports whether reply contains the directive marker at all.
func hasDirective(reply string) bool {
	return strings.Contains(reply, directiveMarker)
}

// findDirective decodes the first JSON object that follows the marker on the
// same line. Nested objects and braces inside strings are handled by the
// decoder.
func findDirective(reply string) (directiveSpan, error) {
	start := strings.Index(reply, directiveMarker)
	if start < 0 {
		return directiveSpan{}, &assistant.DirectiveParseError{Reason: "marker not found"}
	}

	objStart := start + len(directiveMarker)
	for objStart < len(reply) && (reply[objStart] == ' ' || reply[objStart] == '\t') {
		objStart++
	}
	if objStart >= len(reply) || reply[objStart] != '{' {
		return directiveSpan{}, &assistant.DirectiveParseError{
			Reason:  "no JSON object after marker",
			Payload: lineAt(reply, start),
		}
	}

	dec := json.NewDecoder(strings.NewReader(reply[objStart:]))
	var raw rawDirective
	if err := dec.Decode(&raw); err != nil {
		return directiveSpan{}, &assistant.DirectiveParseError{
			Reason:  "malformed JSON",
			Payload: lineAt(reply, start),
			Err:     err,
		}
	}

	return directiveSpan{
		Start: start,
		End:   objStart + int(dec.InputOffset()),
		Raw:   raw,
	}, nil
}

// normalize validates raw and pins both timestamps to year.
func normalize(raw rawDirective, year int) (eventDirective, error) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return eventDirective{}, &assistant.DirectiveParseError{Reason: "title is required"}
	}

	start, err := normalizeTimestamp("start_time", raw.StartTime, year)
	if err != nil {
		return eventDirective{}, err
	}
	end, err := normalizeTimestamp("end_time", raw.EndTime, year)
	if err != nil {
		return eventDirective{}, err
	}
	if !end.After(start) {
		return eventDirective{}, &assistant.DirectiveParseError{
			Reason:  "end_time must be after start_time",
			Payload: datemath.FormatISO(start) + " / " + datemath.FormatISO(end),
		}
	}

	return eventDirective{
		Title:       title,
		Description: strings.TrimSpace(raw.Description),
		StartTime:   start,
		EndTime:     end,
		Location:    strings.TrimSpace(raw.Location),
		Color:       model.ParseColor(raw.Color),
	}, nil
}

func normalizeTimestamp(field, value string, year int) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, &assistant.DirectiveParseError{Reason: field + " is required"}
	}

	t, err := datemath.ParseISO(value)
	if err != nil {
		return time.Time{}, &assistant.DirectiveParseError{Reason: "invalid " + field, Payload: value, Err: err}
	}

	// Millisecond precision is all the stored form keeps.
	t = t.UTC().Truncate(time.Millisecond)
	if t.Year() != year {
		t = datemath.WithYear(t, year)
	}
	return t, nil
}

func lineAt(s string, i int) string {
	end := strings.IndexByte(s[i:], '\n')
	if end < 0 {
		return s[i:]
	}
	return s[i : i+end]
}

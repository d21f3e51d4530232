package model

import (
	"strings"
	"time"
)

// Color is the fixed tag set an event can be labelled with.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorPink   Color = "pink"

	DefaultColor = ColorBlue
)

// Colors lists every valid Color in display order.
var Colors = []Color{ColorBlue, ColorPurple, ColorGreen, ColorOrange, ColorRed, ColorPink}

// ParseColor normalizes s to a known Color, falling back to DefaultColor.
func ParseColor(s string) Color {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Colors {
		if c == known {
			return c
		}
	}
	return DefaultColor
}

// Event is a calendar row owned by a user.
type Event struct {
	ID          string
	UserID      string
	Title       string
	Description string
	StartTime   time.Time // UTC
	EndTime     time.Time // UTC
	Location    string
	Color       Color
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

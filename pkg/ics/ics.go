// Package ics renders events as an iCalendar (RFC 5545) feed.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"calendar-assistant/internal/model"
)

const productID = "-//calendar-assistant//events//EN"

// Render serializes events into a VCALENDAR named name.
// stamp is written as DTSTAMP on every VEVENT.
func Render(name string, events []model.Event, stamp time.Time) []byte {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for _, ev := range events {
		ve := cal.AddEvent(ev.ID + "@calendar-assistant")
		ve.SetDtStampTime(stamp.UTC())
		if !ev.CreatedAt.IsZero() {
			ve.SetCreatedTime(ev.CreatedAt.UTC())
		}
		if !ev.UpdatedAt.IsZero() {
			ve.SetModifiedAt(ev.UpdatedAt.UTC())
		}
		ve.SetStartAt(ev.StartTime.UTC())
		ve.SetEndAt(ev.EndTime.UTC())
		ve.SetSummary(ev.Title)
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if ev.Color != "" {
			ve.SetProperty(ical.ComponentPropertyCategories, string(ev.Color))
		}
	}

	return []byte(cal.Serialize())
}

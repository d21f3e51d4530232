package usecase

import (
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/pkg/datemath"
)

const (
	humanDateLayout = "Monday, January 2, 2006"
	humanTimeLayout = "3:04 PM"
	dayLayout       = "2006-01-02"
)

// exampleWeekday is the weekday used in the relative-weekday prompt example.
const exampleWeekday = time.Friday

func (uc *implUseCase) newGenerationContext() assistant.GenerationContext {
	now := uc.now().UTC()

	gc := assistant.GenerationContext{
		Now:         now,
		Year:        now.Year(),
		Month:       now.Month(),
		Day:         now.Day(),
		ISO:         datemath.FormatISO(now),
		HumanDate:   now.Format(humanDateLayout),
		HumanTime:   now.Format(humanTimeLayout),
		Today:       now.Format(dayLayout),
		NextWeekday: exampleWeekday,
	}

	// Parse only fails for expressions it does not know; these are fixed.
	if t, err := uc.dateMath.Parse("tomorrow", now); err == nil {
		gc.Tomorrow = t.Format(dayLayout)
	}
	if t, err := uc.dateMath.Parse("next week", now); err == nil {
		gc.NextWeek = t.Format(dayLayout)
	}
	if t, err := uc.dateMath.Parse("next "+exampleWeekday.String(), now); err == nil {
		gc.NextWeekdayDate = t.Format(dayLayout)
	}
	return gc
}

package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/Ibraheem715/syllabus-to-calendar/internal/entity"
)

// BuildICS renders events as an iCalendar document. Events without a time
// become all-day VEVENTs; timed events get a one-hour block.
func BuildICS(events []entity.CalendarEvent) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//syllabus-to-calendar//EN")

	now := time.Now().UTC()
	for _, ev := range events {
		day, err := time.Parse("2006-01-02", ev.Date)
		if err != nil {
			return "", fmt.Errorf("event %s has invalid date %q: %w", ev.ID, ev.Date, err)
		}

		vevent := cal.AddEvent(ev.ID + "@syllabus-to-calendar")
		vevent.SetDtStampTime(now)
		vevent.SetSummary(ev.Title)
		if ev.Description != "" {
			vevent.SetDescription(ev.Description)
		}
		if ev.Location != "" {
			vevent.SetLocation(ev.Location)
		}

		if ev.Time == "" {
			vevent.SetAllDayStartAt(day)
			vevent.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}
		clock, err := time.Parse("15:04", ev.Time)
		if err != nil {
			return "", fmt.Errorf("event %s has invalid time %q: %w", ev.ID, ev.Time, err)
		}
		// rendered in UTC; syllabus times carry no timezone of their own
		start := time.Date(day.Year(), day.Month(), day.Day(),
			clock.Hour(), clock.Minute(), 0, 0, time.UTC)
		vevent.SetStartAt(start)
		vevent.SetEndAt(start.Add(time.Hour))
	}

	return cal.Serialize(), nil
}

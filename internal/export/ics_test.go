package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibraheem715/syllabus-to-calendar/constants"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/entity"
)

func TestBuildICS(t *testing.T) {
	events := []entity.CalendarEvent{
		{
			ID: "aaa", Title: "Final Exam", Date: "2026-12-15", Time: "09:00",
			Type: constants.Exam, Priority: constants.High, Location: "Hall A",
			Description: "cumulative",
		},
		{
			ID: "bbb", Title: "Essay due", Date: "2026-11-01",
			Type: constants.Assignment, Priority: constants.Medium,
		},
	}

	ical, err := BuildICS(events)
	require.NoError(t, err)

	assert.Contains(t, ical, "BEGIN:VCALENDAR")
	assert.Contains(t, ical, "END:VCALENDAR")
	assert.Equal(t, 2, strings.Count(ical, "BEGIN:VEVENT"))
	assert.Contains(t, ical, "SUMMARY:Final Exam")
	assert.Contains(t, ical, "LOCATION:Hall A")
	assert.Contains(t, ical, "DESCRIPTION:cumulative")
	assert.Contains(t, ical, "UID:aaa@syllabus-to-calendar")

	// timed event has a concrete DTSTART, all-day event a date-only one
	assert.Contains(t, ical, "DTSTART;VALUE=DATE:20261101")
	assert.Contains(t, ical, "20261215T0900")
}

func TestBuildICSInvalidDate(t *testing.T) {
	_, err := BuildICS([]entity.CalendarEvent{{ID: "x", Title: "bad", Date: "nope"}})
	require.Error(t, err)
}

func TestBuildICSEmpty(t *testing.T) {
	ical, err := BuildICS(nil)
	require.NoError(t, err)
	assert.Contains(t, ical, "BEGIN:VCALENDAR")
	assert.NotContains(t, ical, "BEGIN:VEVENT")
}

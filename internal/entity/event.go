package entity

import (
	"github.com/Ibraheem715/syllabus-to-calendar/constants"
)

// CalendarEvent is a single dated syllabus item for transfer between layers.
// IDs are minted during response sanitization, never taken from the model.
// An empty Time means an all-day event.
type CalendarEvent struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Date        string              `json:"date"`           // YYYY-MM-DD
	Time        string              `json:"time,omitempty"` // HH:MM, 24-hour
	Type        constants.EventType `json:"type"`
	Priority    constants.Priority  `json:"priority"`
	Location    string              `json:"location,omitempty"`
	Course      string              `json:"course,omitempty"`
}

// ExtractionResult is the validated output of one extraction run.
type ExtractionResult struct {
	Events     []CalendarEvent `json:"events"`
	CourseName string          `json:"courseName,omitempty"`
	Instructor string          `json:"instructor,omitempty"`
	Semester   string          `json:"semester,omitempty"`
	Year       int             `json:"year,omitempty"`
}

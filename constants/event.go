package constants

import (
	"strings"
)

type EventType string

const (
	Assignment EventType = "assignment"
	Exam       EventType = "exam"
	Reading    EventType = "reading"
	Lecture    EventType = "lecture"
	Project    EventType = "project"
	Quiz       EventType = "quiz"
	Other      EventType = "other"
)

var allEventTypes = []EventType{
	Assignment,
	Exam,
	Reading,
	Lecture,
	Project,
	Quiz,
	Other,
}

func EventTypes() []string {
	result := make([]string, len(allEventTypes))
	for i, t := range allEventTypes {
		result[i] = string(t)
	}
	return result
}

// CoerceEventType maps a model-produced label onto the closed event type set.
// Unrecognized or empty labels fall back to Other; the second return reports
// whether the label was recognized.
func CoerceEventType(input string) (EventType, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]EventType{
		"homework":    Assignment,
		"hw":          Assignment,
		"problem set": Assignment,
		"midterm":     Exam,
		"final":       Exam,
		"final exam":  Exam,
		"test":        Exam,
		"paper":       Project,
		"essay":       Project,
		"class":       Lecture,
	}

	if t, ok := synonyms[normalized]; ok {
		return t, true
	}

	for _, t := range allEventTypes {
		if normalized == string(t) {
			return t, true
		}
	}

	return Other, false
}

type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

var allPriorities = []Priority{High, Medium, Low}

func Priorities() []string {
	result := make([]string, len(allPriorities))
	for i, p := range allPriorities {
		result[i] = string(p)
	}
	return result
}

// CoercePriority falls back to Medium for unrecognized or empty labels.
func CoercePriority(input string) (Priority, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, p := range allPriorities {
		if normalized == string(p) {
			return p, true
		}
	}
	return Medium, false
}

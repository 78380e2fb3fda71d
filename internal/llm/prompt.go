package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ibraheem715/syllabus-to-calendar/constants"
)

// SystemPrompt constrains every model call to a single JSON object reply.
const SystemPrompt = "You are a syllabus parser. Return ONLY a single JSON object that matches the " +
	"described output format. No prose, no markdown fences, no explanations."

// BuildExtractionPrompt assembles the full instruction string: output format
// description, guidance rules in fixed priority order, then the normalized
// syllabus text verbatim. Pure template substitution; no model call.
func BuildExtractionPrompt(syllabusText string, now time.Time) string {
	var b strings.Builder

	b.WriteString("Extract all dated calendar events (assignments, exams, readings, lectures, projects, quizzes) ")
	b.WriteString("from the course syllabus below.\n\n")

	b.WriteString("Output JSON object format:\n")
	b.WriteString(`{"courseName": string, "instructor": string, "semester": string, "year": number, "events": [`)
	b.WriteString(`{"title": string, "description": string, "date": "YYYY-MM-DD", "time": "HH:MM", `)
	b.WriteString(`"type": string, "priority": string, "location": string}]}`)
	b.WriteString("\n")
	b.WriteString("Allowed \"type\" values: " + strings.Join(constants.EventTypes(), ", ") + ".\n")
	b.WriteString("Allowed \"priority\" values: " + strings.Join(constants.Priorities(), ", ") + ".\n")
	b.WriteString("Omit \"time\" and \"location\" when the syllabus does not state them. Never output null.\n\n")

	b.WriteString("Rules, in priority order:\n")
	rules := []string{
		fmt.Sprintf("If the syllabus gives no year, assume the %s academic year.", academicYear(now)),
		"Resolve relative date expressions (e.g. \"Week 3 Monday\") to absolute YYYY-MM-DD dates when determinable.",
		"Exams and major projects get \"high\" priority.",
		"Regular assignments get \"medium\" priority.",
		"Readings and optional items get \"low\" priority.",
		"Preserve explicit times exactly as stated, in 24-hour HH:MM.",
		"Extract only dates you can determine with reasonable confidence; include ambiguous dates but flag the ambiguity in the event description.",
	}
	for i, r := range rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}

	b.WriteString("\nSyllabus text:\n")
	b.WriteString(syllabusText)
	return b.String()
}

// academicYear renders the current or next academic year label depending on
// where in the calendar we are: from July onward the fall term starting this
// year, before that the year pair that began last fall.
func academicYear(now time.Time) string {
	y := now.Year()
	if now.Month() >= time.July {
		return fmt.Sprintf("%d-%d", y, y+1)
	}
	return fmt.Sprintf("%d-%d", y-1, y)
}

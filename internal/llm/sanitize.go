package llm

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ibraheem715/syllabus-to-calendar/constants"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/common"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/entity"
)

var (
	reDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reClock = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ParseResult parses a raw model reply into a validated ExtractionResult.
//
// The reply must be a JSON object matching the result schema; anything else
// is MALFORMED_RESPONSE. Candidate events are then filter-mapped: each one
// needs a non-empty title and a real YYYY-MM-DD date, and invalid candidates
// are dropped individually so one bad entry never invalidates the batch.
// The second return is the number of dropped candidates.
func ParseResult(raw []byte, logger *slog.Logger) (*entity.ExtractionResult, int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, 0, common.NewAppError(common.CodeMalformedResponse,
			"model reply is not a JSON object", err)
	}
	if err := validateAgainstSchema(BuildResultJSONSchema(), raw); err != nil {
		return nil, 0, common.NewAppError(common.CodeMalformedResponse,
			"model reply does not match the expected shape", err)
	}

	result := &entity.ExtractionResult{
		Events:     make([]entity.CalendarEvent, 0, 8),
		CourseName: asString(m["courseName"]),
		Instructor: asString(m["instructor"]),
		Semester:   asString(m["semester"]),
		Year:       asYear(m["year"]),
	}

	dropped := 0
	candidates, _ := m["events"].([]any)
	for _, c := range candidates {
		obj, ok := c.(map[string]any)
		if !ok {
			dropped++
			continue
		}
		ev, ok := sanitizeCandidate(obj)
		if !ok {
			dropped++
			continue
		}
		result.Events = append(result.Events, ev)
	}

	if dropped > 0 {
		logger.Warn("llm.sanitize.dropped_candidates",
			"dropped", dropped, "kept", len(result.Events))
	}
	return result, dropped, nil
}

// sanitizeCandidate turns one raw candidate object into a CalendarEvent.
// Returns false when the candidate fails validation and must be dropped.
func sanitizeCandidate(obj map[string]any) (entity.CalendarEvent, bool) {
	// title must be a real JSON string, not a stringified scalar
	rawTitle, _ := obj["title"].(string)
	title := strings.TrimSpace(rawTitle)
	date := asString(obj["date"])
	if title == "" || !reDate.MatchString(date) {
		return entity.CalendarEvent{}, false
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return entity.CalendarEvent{}, false
	}

	evType, _ := constants.CoerceEventType(asString(obj["type"]))
	priority, _ := constants.CoercePriority(asString(obj["priority"]))

	ev := entity.CalendarEvent{
		ID:          uuid.NewString(),
		Title:       title,
		Description: asString(obj["description"]),
		Date:        date,
		Type:        evType,
		Priority:    priority,
	}
	if t := asString(obj["time"]); reClock.MatchString(t) {
		ev.Time = t
	}
	if loc := asString(obj["location"]); loc != "" {
		ev.Location = loc
	}
	return ev, true
}

// asString stringifies and trims scalar JSON values; anything else is "".
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asYear(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return 0
}

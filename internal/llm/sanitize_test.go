package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibraheem715/syllabus-to-calendar/constants"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/common"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/entity"
)

func TestParseResultDropsInvalidCandidatesOnly(t *testing.T) {
	raw := `{"events": [
		{"title": "A", "date": "2024-09-15"},
		{"title": "", "date": "2024-09-16"},
		{"title": "B", "date": "not-a-date"}
	]}`

	result, dropped, err := ParseResult([]byte(raw), nil)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "A", result.Events[0].Title)
	assert.Equal(t, 2, dropped)
}

func TestParseResultRejectsImpossibleDate(t *testing.T) {
	raw := `{"events": [{"title": "ghost", "date": "2024-09-31"}]}`
	result, dropped, err := ParseResult([]byte(raw), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Events)
	assert.Equal(t, 1, dropped)
}

func TestParseResultCoercesEnums(t *testing.T) {
	raw := `{"events": [
		{"title": "talk", "date": "2024-10-01", "type": "seminar", "priority": "urgent"},
		{"title": "final", "date": "2024-12-10", "type": "exam", "priority": "high"}
	]}`

	result, _, err := ParseResult([]byte(raw), nil)
	require.NoError(t, err)
	require.Len(t, result.Events, 2)

	assert.Equal(t, constants.Other, result.Events[0].Type)
	assert.Equal(t, constants.Medium, result.Events[0].Priority)
	assert.Equal(t, constants.Exam, result.Events[1].Type)
	assert.Equal(t, constants.High, result.Events[1].Priority)
}

func TestParseResultGeneratesUniqueIDs(t *testing.T) {
	raw := `{"events": [
		{"title": "a", "date": "2024-09-01", "id": "model-supplied"},
		{"title": "b", "date": "2024-09-02"}
	]}`

	result, _, err := ParseResult([]byte(raw), nil)
	require.NoError(t, err)
	require.Len(t, result.Events, 2)
	assert.NotEmpty(t, result.Events[0].ID)
	assert.NotEqual(t, "model-supplied", result.Events[0].ID)
	assert.NotEqual(t, result.Events[0].ID, result.Events[1].ID)
}

func TestParseResultOptionalFields(t *testing.T) {
	raw := `{"events": [
		{"title": "  Quiz 1  ", "date": "2024-09-20", "time": "14:30", "location": "  Hall B ", "description": " ch. 1-3 "},
		{"title": "Reading", "date": "2024-09-21", "time": "2pm", "location": "   "}
	]}`

	result, _, err := ParseResult([]byte(raw), nil)
	require.NoError(t, err)
	require.Len(t, result.Events, 2)

	timed := result.Events[0]
	assert.Equal(t, "Quiz 1", timed.Title)
	assert.Equal(t, "14:30", timed.Time)
	assert.Equal(t, "Hall B", timed.Location)
	assert.Equal(t, "ch. 1-3", timed.Description)

	allDay := result.Events[1]
	assert.Empty(t, allDay.Time, "non-HH:MM time is not carried through")
	assert.Empty(t, allDay.Location)
}

func TestParseResultCourseMetadata(t *testing.T) {
	raw := `{"courseName": " Intro to CS ", "instructor": "Prof. Byrd", "semester": "Fall", "year": 2024, "events": []}`
	result, _, err := ParseResult([]byte(raw), nil)
	require.NoError(t, err)
	assert.Equal(t, "Intro to CS", result.CourseName)
	assert.Equal(t, "Prof. Byrd", result.Instructor)
	assert.Equal(t, "Fall", result.Semester)
	assert.Equal(t, 2024, result.Year)
}

func TestParseResultLenientMetadata(t *testing.T) {
	// metadata of the wrong scalar type never fails the reply; the valid
	// event subset is kept and the scalars are stringified
	raw := `{"courseName": 101, "instructor": null, "semester": true, "year": null, "events": [
		{"title": "A", "date": "2024-09-15"},
		"not-an-object"
	]}`

	result, dropped, err := ParseResult([]byte(raw), nil)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "A", result.Events[0].Title)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, "101", result.CourseName)
	assert.Empty(t, result.Instructor)
	assert.Equal(t, "true", result.Semester)
	assert.Zero(t, result.Year)
}

func TestParseResultRequiresStringTitle(t *testing.T) {
	raw := `{"events": [
		{"title": 42, "date": "2024-09-15"},
		{"title": "real", "date": "2024-09-15"}
	]}`

	result, dropped, err := ParseResult([]byte(raw), nil)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "real", result.Events[0].Title)
	assert.Equal(t, 1, dropped)
}

func TestParseResultYearAsString(t *testing.T) {
	result, _, err := ParseResult([]byte(`{"year": "2025"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, 2025, result.Year)
}

func TestParseResultMalformed(t *testing.T) {
	for _, raw := range []string{
		"not json at all",
		`[{"title": "A", "date": "2024-09-15"}]`, // array, not object
		`"just a string"`,
		`{"events": "not-a-list"}`,
	} {
		_, _, err := ParseResult([]byte(raw), nil)
		require.Error(t, err, "raw %q", raw)
		assert.True(t, errors.Is(err, common.ErrMalformedResponse), "raw %q", raw)
	}
}

func TestResultRoundTrip(t *testing.T) {
	raw := `{"courseName": "Algorithms", "year": 2025, "events": [
		{"title": "PS1", "date": "2025-09-12", "type": "assignment", "priority": "medium"},
		{"title": "Midterm", "date": "2025-10-20", "time": "09:00", "type": "exam", "priority": "high", "location": "Hall A"}
	]}`
	original, _, err := ParseResult([]byte(raw), nil)
	require.NoError(t, err)

	encoded, err := json.Marshal(original)
	require.NoError(t, err)
	var decoded entity.ExtractionResult
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	// ids are generation-time-unique, everything else must survive intact
	require.Len(t, decoded.Events, len(original.Events))
	for i := range original.Events {
		want, got := original.Events[i], decoded.Events[i]
		want.ID, got.ID = "", ""
		assert.Equal(t, want, got)
	}
	assert.Equal(t, original.CourseName, decoded.CourseName)
	assert.Equal(t, original.Year, decoded.Year)
}

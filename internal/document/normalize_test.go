package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want string
	}{
		{"whitespace runs", "Week  1:\t\tIntro\n\nReadings", "Week 1: Intro Readings"},
		{"page breaks", "end of page\fstart of page", "end of page start of page"},
		{"bullets", "• Essay 1\n‣ Essay 2", "- Essay 1 - Essay 2"},
		{"curly quotes", "“Hamlet” by Shakespeare, read act ‘one’", `"Hamlet" by Shakespeare, read act 'one'`},
		{"space before punctuation", "Due : Friday , 5pm", "Due: Friday, 5pm"},
		{"empty", "", ""},
		{"leading and trailing", "  padded  ", "padded"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Week  1:\t\tIntro\n\nReadings • chapter 1 , 2",
		"“quoted” \f text",
		"already normalized text.",
		"",
		"  \n\t ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

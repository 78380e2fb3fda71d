package document

import (
	"regexp"
	"strings"
)

var (
	reBullet     = regexp.MustCompile(`[\x{2022}\x{25AA}\x{25CF}\x{25CB}\x{25E6}\x{2023}\x{00B7}]`)
	reWhitespace = regexp.MustCompile(`[\s\x{00A0}]+`)
	rePunctGap   = regexp.MustCompile(` +([,.;:!?])`)
)

var quoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
)

// Normalize rewrites raw extracted text into cleaner model input: curly
// quotes become straight, bullet glyphs become a dash, whitespace runs
// (including page breaks) collapse to single spaces, and spacing before
// punctuation is tightened. Idempotent.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = quoteReplacer.Replace(s)
	s = reBullet.ReplaceAllString(s, "-")
	s = reWhitespace.ReplaceAllString(s, " ")
	s = rePunctGap.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

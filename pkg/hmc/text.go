package hmc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// A bold keyword on its own line, e.g. "<b>Taunt</b>\n<b>Divine Shield</b>".
	// Lowercase continuations are the same sentence wrapped by the client.
	reKeywordBreak = regexp.MustCompile(`</b>\s*\n\s*([^a-z\s])`)
	reNewline      = regexp.MustCompile(`\s*\n\s*`)
	// Spell damage and healing bonuses are marked with $ and # respectively.
	reBonus = regexp.MustCompile(`[$#](\d+)`)

	markup = strings.NewReplacer(
		"\u00a0", " ",
		"\u2019", "'",
		"<b>", "",
		"</b>", "",
		"<i>", "",
		"</i>", "",
		"[x]", "",
	)
)

// NormalizeText turns raw card text into the single line form used in the
// Card Text column: markup removed, newlines folded and sentences closed.
func NormalizeText(s string) string {
	s = reKeywordBreak.ReplaceAllString(s, "</b>. $1")
	s = reNewline.ReplaceAllString(s, " ")
	s = markup.Replace(s)
	s = reBonus.ReplaceAllString(s, "$1")
	s = strings.TrimSpace(s)

	// Heuristic: text that already has a period is prose and should end with
	// one. Bare keywords ("Charge, Taunt") are left alone.
	if strings.Contains(s, ".") && !strings.ContainsAny(s[len(s)-1:], `.)'"`) {
		s += "."
	}
	return s
}

// checkASCII returns an EncodingError for the first non-ASCII rune in s.
func checkASCII(field, s string) error {
	for i, r := range s {
		if r >= utf8.RuneSelf {
			return &EncodingError{Field: field, Rune: r, Offset: i}
		}
	}
	return nil
}

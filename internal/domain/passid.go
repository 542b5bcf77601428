package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// PassPrefix is the fixed textual prefix of every issued pass id.
const PassPrefix = "EP"

// FormatPassID renders an allocated sequence number as the canonical
// stored pass id, e.g. EP-000042.
func FormatPassID(seq int64) string {
	return fmt.Sprintf("%s-%06d", PassPrefix, seq)
}

// NormalizePassQuery canonicalizes operator input before lookup:
// invisible characters are stripped, every dash variant folds to a
// single ASCII hyphen, runs of hyphens collapse, surrounding whitespace
// is trimmed and letters are upper-cased. Scanned and copy-pasted pass
// ids routinely arrive with en dashes or zero-width joiners in them.
func NormalizePassQuery(q string) string {
	var b strings.Builder
	b.Grow(len(q))
	prevHyphen := false
	for _, r := range strings.TrimSpace(q) {
		switch {
		case isInvisible(r):
			continue
		case isDash(r):
			if !prevHyphen {
				b.WriteRune('-')
			}
			prevHyphen = true
			continue
		}
		prevHyphen = false
		b.WriteRune(unicode.ToUpper(r))
	}
	return strings.Trim(b.String(), "-")
}

// PassDigits extracts the numeric part of a pass query, used for the
// containment fallback when the prefix was omitted or mistyped.
func PassDigits(q string) string {
	var b strings.Builder
	for _, r := range q {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isInvisible(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff', '\u00ad':
		return true
	}
	return unicode.Is(unicode.Cf, r)
}

func isDash(r rune) bool {
	if r == '-' || r == '−' || r == '˗' || r == '－' {
		return true
	}
	return unicode.Is(unicode.Pd, r)
}

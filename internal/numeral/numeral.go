// Package numeral converts between Kanji numerals and Arabic integers and
// handles the 第〜条 / 第〜項 / 第〜号 wrapper notations used in Japanese
// legal citations.
//
// All functions are total: malformed input degrades to 0, the empty string,
// or the original input unchanged. Citation text in the wild is inconsistently
// formatted, so callers get best-effort normalization, never an error.
package numeral

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

var kanjiDigits = map[rune]int{
	'〇': 0, '零': 0,
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9,
}

var kanjiMultipliers = map[rune]int{
	'十': 10, '百': 100, '千': 1000,
}

// digitRunes maps 0-9 to their Kanji digit characters.
var digitRunes = []rune{'〇', '一', '二', '三', '四', '五', '六', '七', '八', '九'}

// ToInt converts a Kanji numeral string to an integer. Two grammars are
// disambiguated automatically:
//
//   - Positional: every character is a plain digit and no multiplier
//     appears ("一〇三" → 103). Used for things like years.
//   - Multiplicative-additive: digits combine with 十/百/千 multipliers
//     ("百二十三" → 123). A multiplier with no preceding digit has an
//     implied coefficient of 1 ("十七" → 17).
//
// Empty input returns 0. Any character outside the numeral alphabet
// makes the whole string unparseable and returns 0.
func ToInt(s string) int {
	if s == "" {
		return 0
	}

	hasMultiplier := false
	for _, r := range s {
		if _, ok := kanjiMultipliers[r]; ok {
			hasMultiplier = true
			continue
		}
		if _, ok := kanjiDigits[r]; !ok {
			return 0
		}
	}

	if !hasMultiplier {
		// Positional digit string, base 10.
		total := 0
		for _, r := range s {
			total = total*10 + kanjiDigits[r]
		}
		return total
	}

	total := 0
	pending := 0
	for _, r := range s {
		if d, ok := kanjiDigits[r]; ok {
			pending = d
			continue
		}
		mult := kanjiMultipliers[r]
		if pending == 0 {
			pending = 1
		}
		total += pending * mult
		pending = 0
	}
	// Trailing digit with no multiplier ("二十三" → 20 + 3).
	return total + pending
}

// FromInt formats an integer as a Kanji numeral in canonical
// multiplicative-additive form. 0-9 map to single digit characters;
// larger values decompose into 千/百/十 places with coefficient 1
// suppressed ("十七", not "一十七"). Supports up to 9999.
// Negative or out-of-range input returns the empty string.
func FromInt(n int) string {
	if n < 0 || n > 9999 {
		return ""
	}
	if n <= 9 {
		return string(digitRunes[n])
	}

	var b strings.Builder
	for _, place := range []struct {
		value int
		mark  rune
	}{
		{1000, '千'},
		{100, '百'},
		{10, '十'},
	} {
		coef := n / place.value
		if coef == 0 {
			continue
		}
		if coef > 1 {
			b.WriteRune(digitRunes[coef])
		}
		b.WriteRune(place.mark)
		n %= place.value
	}
	if n > 0 {
		b.WriteRune(digitRunes[n])
	}
	return b.String()
}

// ParseArticleRef normalizes an article reference to an Arabic digit
// string. Accepts the wrapped form 第十七条 (or 第17条), a bare Kanji
// numeral, or an already-Arabic number; full-width digits are folded.
// Unparseable input is returned unchanged rather than collapsed to "0".
func ParseArticleRef(ref string) string {
	return parseRef(ref, "条")
}

// ParseParagraphRef normalizes a 第〜項 paragraph reference.
func ParseParagraphRef(ref string) string {
	return parseRef(ref, "項")
}

// ParseItemRef normalizes a 第〜号 item reference.
func ParseItemRef(ref string) string {
	return parseRef(ref, "号")
}

func parseRef(ref, suffix string) string {
	s := strings.TrimSpace(width.Fold.String(ref))
	if strings.HasPrefix(s, "第") && strings.HasSuffix(s, suffix) {
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "第"), suffix)
		return normalizeNumeral(inner)
	}
	return normalizeNumeral(s)
}

func normalizeNumeral(s string) string {
	if isASCIIDigits(s) {
		return s
	}
	if n := ToInt(s); n > 0 {
		return strconv.Itoa(n)
	}
	return s
}

// FormatArticleRef is the inverse of ParseArticleRef: it wraps an article
// number back into 第〜条 form with the numeral rendered in Kanji.
// Input that is not a positive integer is wrapped unchanged.
func FormatArticleRef(num string) string {
	return formatRef(num, "条")
}

// FormatParagraphRef wraps a paragraph number into 第〜項 form.
func FormatParagraphRef(num string) string {
	return formatRef(num, "項")
}

// FormatItemRef wraps an item number into 第〜号 form.
func FormatItemRef(num string) string {
	return formatRef(num, "号")
}

func formatRef(num, suffix string) string {
	s := strings.TrimSpace(width.Fold.String(num))
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		if k := FromInt(n); k != "" {
			return "第" + k + suffix
		}
	}
	return "第" + s + suffix
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

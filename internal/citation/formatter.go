package citation

import (
	"fmt"
	"strings"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/numeral"
)

// Style selects the output grammar for Format.
type Style string

const (
	StyleFull     Style = "full"     // Article 17(1), Name (Act No. 57 of 2003)
	StyleShort    Style = "short"    // Art. 17(1), Name
	StylePinpoint Style = "pinpoint" // Art. 17(1)
	StyleJapanese Style = "japanese" // 第十七条第一項 Name
)

// Format renders a canonical citation in the requested style. Formatting
// is best-effort: an invalid citation or one without an article number
// renders as the empty string, and an unknown style falls back to the
// full form.
func Format(c ParsedCitation, style Style) string {
	if !c.Valid || c.Article == "" {
		return ""
	}

	switch style {
	case StyleShort:
		return fmt.Sprintf("Art. %s, %s", pinpoint(c), englishName(c))
	case StylePinpoint:
		return fmt.Sprintf("Art. %s", pinpoint(c))
	case StyleJapanese:
		return japaneseForm(c)
	default:
		return fmt.Sprintf("Article %s, %s%s", pinpoint(c), englishName(c), actInfo(c))
	}
}

// pinpoint builds the article reference with parenthesized paragraph and
// item: 17, 17(1), 17(1)(2). Paragraph and item wrap independently, so an
// item can appear without a paragraph.
func pinpoint(c ParsedCitation) string {
	var b strings.Builder
	b.WriteString(c.Article)
	if c.Paragraph != "" {
		fmt.Fprintf(&b, "(%s)", c.Paragraph)
	}
	if c.Item != "" {
		fmt.Fprintf(&b, "(%s)", c.Item)
	}
	return b.String()
}

// englishName prefers the English title, falling back to the native one.
func englishName(c ParsedCitation) string {
	if c.TitleEN != "" {
		return c.TitleEN
	}
	return c.Title
}

// actInfo renders the act-number suffix when both number and year are known.
func actInfo(c ParsedCitation) string {
	if c.ActNumber == 0 || c.Year == 0 {
		return ""
	}
	return fmt.Sprintf(" (Act No. %d of %d)", c.ActNumber, c.Year)
}

// japaneseForm renders 第〜条第〜項第〜号 with Kanji numerals, followed by
// the native title (falling back to the English one).
func japaneseForm(c ParsedCitation) string {
	var b strings.Builder
	b.WriteString(numeral.FormatArticleRef(c.Article))
	if c.Paragraph != "" {
		b.WriteString(numeral.FormatParagraphRef(c.Paragraph))
	}
	if c.Item != "" {
		b.WriteString(numeral.FormatItemRef(c.Item))
	}
	name := c.Title
	if name == "" {
		name = c.TitleEN
	}
	if name != "" {
		b.WriteString(" ")
		b.WriteString(name)
	}
	return b.String()
}

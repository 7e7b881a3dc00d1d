package citation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/numeral"
)

// kanjiNum matches one numeral in any of the surface forms a citation may
// use: Kanji digits and multipliers, ASCII digits, full-width digits.
const kanjiNum = `[〇零一二三四五六七八九十百千0-9０-９]+`

// Parser converts free-form citation strings into the canonical
// ParsedCitation. Grammars are tried in a fixed order and the first match
// wins: native forms before English forms, because a native reference is
// unambiguous once the 第〜条 markers are detected while the English
// patterns are comparatively permissive and could over-match.
//
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	leadingNative  *regexp.Regexp
	trailingNative *regexp.Regexp
	englishFull    *regexp.Regexp
	englishShort   *regexp.Regexp
	actIdentifier  *regexp.Regexp
}

// NewParser compiles the citation grammars.
func NewParser() *Parser {
	return &Parser{
		// 第十七条[第一項[第二号]] 個人情報の保護に関する法律
		leadingNative: regexp.MustCompile(
			`^(第` + kanjiNum + `条)(第` + kanjiNum + `項)?(第` + kanjiNum + `号)?[\s　、,]*(.+)$`,
		),
		// 個人情報の保護に関する法律第十七条[第一項[第二号]]
		trailingNative: regexp.MustCompile(
			`^(.+?)[\s　、,]*(第` + kanjiNum + `条)(第` + kanjiNum + `項)?(第` + kanjiNum + `号)?$`,
		),
		// Article 17, Paragraph 1, Item 2, Act on ... (Act No. 57 of 2003)
		englishFull: regexp.MustCompile(
			`(?i)^(?:article|art\.)\s+(\d+)` +
				`(?:,\s*(?:paragraph|para\.)\s+(\d+))?` +
				`(?:,\s*item\s+(\d+))?` +
				`,\s*(.+?)` +
				`(?:\s*\(act\s+no\.\s*(\d+)\s+of\s+(\d+)\))?$`,
		),
		// Art. 17, Para. 1, APPI
		englishShort: regexp.MustCompile(
			`(?i)^(?:art\.|article)\s+(\d+)(?:,\s*(?:para\.|paragraph)\s+(\d+))?,\s*(.+)$`,
		),
		// act-57-2003, art. 17, para. 1
		actIdentifier: regexp.MustCompile(
			`(?i)^act-(\d+)-(\d{4})\s*,\s*art\.\s*(\d+)(?:\s*,\s*para\.\s*(\d+))?$`,
		),
	}
}

// Parse normalizes a citation string. It never returns an error: an input
// no grammar recognizes yields Valid=false, Kind=unknown, and a diagnostic
// naming the input.
func (p *Parser) Parse(text string) ParsedCitation {
	trimmed := strings.TrimSpace(text)

	if m := p.leadingNative.FindStringSubmatch(trimmed); m != nil {
		return p.nativeCitation(m[4], m[1], m[2], m[3])
	}
	if m := p.trailingNative.FindStringSubmatch(trimmed); m != nil {
		return p.nativeCitation(m[1], m[2], m[3], m[4])
	}
	if m := p.englishFull.FindStringSubmatch(trimmed); m != nil {
		c := ParsedCitation{
			Valid:     true,
			TitleEN:   strings.TrimSpace(m[4]),
			Article:   m[1],
			Paragraph: m[2],
			Item:      m[3],
		}
		c.Kind = kindFromTitle("", c.TitleEN)
		if m[5] != "" && m[6] != "" {
			c.ActNumber, _ = strconv.Atoi(m[5])
			c.Year, _ = strconv.Atoi(m[6])
			c.LawNumber = fmt.Sprintf("act-%d-%d", c.ActNumber, c.Year)
		}
		return c
	}
	if m := p.englishShort.FindStringSubmatch(trimmed); m != nil {
		c := ParsedCitation{
			Valid:     true,
			TitleEN:   strings.TrimSpace(m[3]),
			Article:   m[1],
			Paragraph: m[2],
		}
		c.Kind = kindFromTitle("", c.TitleEN)
		return c
	}
	if m := p.actIdentifier.FindStringSubmatch(trimmed); m != nil {
		c := ParsedCitation{
			Valid:     true,
			Kind:      KindStatute,
			Article:   m[3],
			Paragraph: m[4],
		}
		c.ActNumber, _ = strconv.Atoi(m[1])
		c.Year, _ = strconv.Atoi(m[2])
		c.LawNumber = fmt.Sprintf("act-%d-%d", c.ActNumber, c.Year)
		return c
	}

	return ParsedCitation{
		Valid: false,
		Kind:  KindUnknown,
		Error: fmt.Sprintf("unrecognized citation format: %q", trimmed),
	}
}

// nativeCitation builds the canonical form from the pieces of a native
// reference. The item marker is accepted with or without a preceding
// paragraph marker — e-Gov data contains direct article→item references.
func (p *Parser) nativeCitation(title, article, paragraph, item string) ParsedCitation {
	c := ParsedCitation{
		Valid:   true,
		Title:   strings.TrimSpace(title),
		Article: numeral.ParseArticleRef(article),
	}
	if paragraph != "" {
		c.Paragraph = numeral.ParseParagraphRef(paragraph)
	}
	if item != "" {
		c.Item = numeral.ParseItemRef(item)
	}
	c.Kind = kindFromTitle(c.Title, "")
	return c
}

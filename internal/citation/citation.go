// Package citation parses, formats, and validates Japanese legal citations.
//
// All parsing paths converge on ParsedCitation, the canonical structure;
// all formatting starts from it. Article, paragraph, and item references
// are always stored as Arabic digit strings — the parser is the single
// normalization boundary between surface forms (Kanji numerals, full-width
// digits, English citation grammar, act identifiers) and the canonical
// representation.
package citation

import "strings"

// Kind classifies the instrument a citation refers to.
type Kind string

const (
	KindStatute              Kind = "statute"
	KindCabinetOrder         Kind = "cabinet_order"
	KindMinisterialOrdinance Kind = "ministerial_ordinance"
	KindUnknown              Kind = "unknown"
)

// ParsedCitation is the canonical, grammar-independent representation of
// a legal citation.
//
// When Valid is false, only Kind (always KindUnknown) and Error are set.
// When Valid is true, at least one of Title and TitleEN is present, and
// Article/Paragraph/Item hold digit strings regardless of the numeral
// system the source used.
type ParsedCitation struct {
	Valid bool `json:"valid"`
	Kind  Kind `json:"kind"`

	// Title is the native (Japanese) name; TitleEN the English name.
	Title   string `json:"title,omitempty"`
	TitleEN string `json:"title_en,omitempty"`

	// LawNumber is the canonical act-<number>-<year> identifier,
	// populated when the input encodes an act-number-and-year form.
	LawNumber string `json:"law_number,omitempty"`
	ActNumber int    `json:"act_number,omitempty"`
	Year      int    `json:"year,omitempty"`

	Article   string `json:"article,omitempty"`
	Paragraph string `json:"paragraph,omitempty"`
	Item      string `json:"item,omitempty"`

	// Error names the unparseable input when Valid is false.
	Error string `json:"error,omitempty"`
}

// kindFromTitle classifies an instrument by its naming conventions.
// Cabinet orders end in 政令 or 施行令; ministerial ordinances in 省令
// or 施行規則. Everything else parses as a statute.
func kindFromTitle(title, titleEN string) Kind {
	switch {
	case strings.Contains(title, "施行令"), strings.HasSuffix(title, "政令"):
		return KindCabinetOrder
	case strings.Contains(title, "施行規則"), strings.HasSuffix(title, "省令"):
		return KindMinisterialOrdinance
	}
	lower := strings.ToLower(titleEN)
	switch {
	case strings.Contains(lower, "cabinet order"):
		return KindCabinetOrder
	case strings.Contains(lower, "ministerial ordinance"), strings.Contains(lower, "enforcement rules"):
		return KindMinisterialOrdinance
	}
	return KindStatute
}

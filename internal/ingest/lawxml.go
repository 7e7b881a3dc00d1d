package ingest

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
	"github.com/Ansvar-Systems/japan-law-mcp/internal/numeral"
)

// LawDocument is a parsed law ready for loading into the store.
type LawDocument struct {
	Law        lawstore.Law
	Provisions []lawstore.Provision
}

// ─── e-Gov XML schema (the subset this pipeline reads) ───────────────────────

type xmlEnvelope struct {
	ApplData struct {
		LawFullText struct {
			Law *xmlLaw `xml:"Law"`
		} `xml:"LawFullText"`
	} `xml:"ApplData"`
}

type xmlLaw struct {
	Era             string `xml:"Era,attr"`
	Year            string `xml:"Year,attr"`
	Num             string `xml:"Num,attr"`
	LawType         string `xml:"LawType,attr"`
	PromulgateMonth string `xml:"PromulgateMonth,attr"`
	PromulgateDay   string `xml:"PromulgateDay,attr"`
	LawNum          string `xml:"LawNum"`
	LawBody         struct {
		LawTitle struct {
			Text string `xml:",chardata"`
			Abbr string `xml:"Abbrev,attr"`
		} `xml:"LawTitle"`
		MainProvision xmlSubdivision `xml:"MainProvision"`
	} `xml:"LawBody"`
}

// xmlSubdivision covers MainProvision and every structural level that can
// hold articles (Part/Chapter/Section/Subsection). Articles nest at any
// of these levels depending on the law's size.
type xmlSubdivision struct {
	Articles     []xmlArticle     `xml:"Article"`
	Parts        []xmlSubdivision `xml:"Part"`
	Chapters     []xmlSubdivision `xml:"Chapter"`
	Sections     []xmlSubdivision `xml:"Section"`
	Subsections  []xmlSubdivision `xml:"Subsection"`
}

type xmlArticle struct {
	Num        string         `xml:"Num,attr"`
	Caption    string         `xml:"ArticleCaption"`
	Title      string         `xml:"ArticleTitle"`
	Paragraphs []xmlParagraph `xml:"Paragraph"`
}

type xmlParagraph struct {
	Num      string      `xml:"Num,attr"`
	Sentence xmlSentence `xml:"ParagraphSentence"`
	Items    []xmlItem   `xml:"Item"`
}

type xmlItem struct {
	Num      string      `xml:"Num,attr"`
	Title    string      `xml:"ItemTitle"`
	Sentence xmlSentence `xml:"ItemSentence"`
}

type xmlSentence struct {
	Sentences []string `xml:"Sentence"`
}

func (s xmlSentence) text() string {
	return strings.TrimSpace(strings.Join(s.Sentences, ""))
}

// ─── Parsing ─────────────────────────────────────────────────────────────────

// ParseLawXML decodes e-Gov law XML into a LawDocument. Both the API
// envelope (DataRoot/ApplData/LawFullText) and a bare <Law> document are
// accepted, so files saved from either source load identically.
func ParseLawXML(data []byte) (*LawDocument, error) {
	law, err := decodeLaw(data)
	if err != nil {
		return nil, err
	}

	doc := &LawDocument{Law: lawMetadata(law)}
	collectProvisions(&law.LawBody.MainProvision, &doc.Provisions)
	if len(doc.Provisions) == 0 {
		return nil, fmt.Errorf("ingest: law %q has no provisions", doc.Law.Title)
	}
	return doc, nil
}

func decodeLaw(data []byte) (*xmlLaw, error) {
	var envelope xmlEnvelope
	if err := xml.Unmarshal(data, &envelope); err == nil && envelope.ApplData.LawFullText.Law != nil {
		return envelope.ApplData.LawFullText.Law, nil
	}

	var law xmlLaw
	if err := xml.Unmarshal(data, &law); err != nil {
		return nil, fmt.Errorf("ingest: decode law xml: %w", err)
	}
	if law.LawBody.LawTitle.Text == "" {
		return nil, fmt.Errorf("ingest: document is not e-Gov law xml")
	}
	return &law, nil
}

// eraStart maps era names to the Gregorian year of their first year.
var eraStart = map[string]int{
	"Meiji": 1868, "Taisho": 1912, "Showa": 1926, "Heisei": 1989, "Reiwa": 2019,
	"明治": 1868, "大正": 1912, "昭和": 1926, "平成": 1989, "令和": 2019,
}

// lawNumPattern decomposes a Japanese law number such as
// 平成十五年法律第五十七号 into era, era-year, and act number.
var lawNumPattern = regexp.MustCompile(
	`(明治|大正|昭和|平成|令和)([〇零一二三四五六七八九十百千0-9]+)年.*?第([〇零一二三四五六七八九十百千0-9]+)号`,
)

func lawMetadata(law *xmlLaw) lawstore.Law {
	l := lawstore.Law{
		LawNumber: strings.TrimSpace(law.LawNum),
		Title:     strings.TrimSpace(law.LawBody.LawTitle.Text),
		Kind:      kindFromLawType(law.LawType),
		Status:    "in_force",
	}

	// Era/Year/Num attributes first; the Kanji law number as fallback.
	if start, ok := eraStart[law.Era]; ok {
		if y, err := strconv.Atoi(law.Year); err == nil && y > 0 {
			l.ActYear = start + y - 1
		}
	}
	l.ActNumber, _ = strconv.Atoi(law.Num)

	if (l.ActYear == 0 || l.ActNumber == 0) && l.LawNumber != "" {
		if m := lawNumPattern.FindStringSubmatch(l.LawNumber); m != nil {
			if l.ActYear == 0 {
				l.ActYear = eraStart[m[1]] + kanjiAtoi(m[2]) - 1
			}
			if l.ActNumber == 0 {
				l.ActNumber = kanjiAtoi(m[3])
			}
		}
	}

	if l.ActNumber > 0 && l.ActYear > 0 {
		l.ID = fmt.Sprintf("act-%d-%d", l.ActNumber, l.ActYear)
	} else {
		// Last resort: the normalized title keeps the law addressable.
		l.ID = lawstore.NormalizeTitle(l.Title)
	}
	return l
}

func kanjiAtoi(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return numeral.ToInt(s)
}

func kindFromLawType(lawType string) string {
	switch lawType {
	case "CabinetOrder":
		return "cabinet_order"
	case "MinisterialOrdinance", "Rule":
		return "ministerial_ordinance"
	default:
		return "statute"
	}
}

func collectProvisions(sub *xmlSubdivision, out *[]lawstore.Provision) {
	for i := range sub.Articles {
		appendArticle(&sub.Articles[i], out)
	}
	for _, nested := range [][]xmlSubdivision{sub.Parts, sub.Chapters, sub.Sections, sub.Subsections} {
		for i := range nested {
			collectProvisions(&nested[i], out)
		}
	}
}

func appendArticle(art *xmlArticle, out *[]lawstore.Provision) {
	num := articleNumber(art)
	if num == "" {
		return
	}
	ref := "art-" + num
	caption := strings.Trim(strings.TrimSpace(art.Caption), "（）()")

	for pi := range art.Paragraphs {
		para := &art.Paragraphs[pi]
		paraNum := para.Num
		if paraNum == "" {
			paraNum = strconv.Itoa(pi + 1)
		}

		if body := para.Sentence.text(); body != "" {
			p := lawstore.Provision{
				Ref:       ref,
				Article:   num,
				Paragraph: paraNum,
				Body:      body,
			}
			if pi == 0 {
				p.Caption = caption
			}
			*out = append(*out, p)
		}

		for ii := range para.Items {
			item := &para.Items[ii]
			itemNum := item.Num
			if itemNum == "" {
				itemNum = numeral.ParseItemRef(strings.TrimSpace(item.Title))
			}
			if body := item.Sentence.text(); body != "" {
				*out = append(*out, lawstore.Provision{
					Ref:       ref,
					Article:   num,
					Paragraph: paraNum,
					Item:      itemNum,
					Body:      body,
				})
			}
		}
	}
}

// articleNumber normalizes the Num attribute ("17", "23_2") or, failing
// that, the article title (第十七条) into the corpus digit-string
// convention ("17", "23-2").
func articleNumber(art *xmlArticle) string {
	if art.Num != "" {
		return strings.ReplaceAll(art.Num, "_", "-")
	}
	if title := strings.TrimSpace(art.Title); title != "" {
		if n := numeral.ParseArticleRef(title); n != title {
			return n
		}
	}
	return ""
}

package ingest

import (
	"strings"
	"testing"
)

const sampleLawXML = `<?xml version="1.0" encoding="UTF-8"?>
<Law Era="Heisei" Year="15" Num="57" LawType="Act" PromulgateMonth="05" PromulgateDay="30">
  <LawNum>平成十五年法律第五十七号</LawNum>
  <LawBody>
    <LawTitle>個人情報の保護に関する法律</LawTitle>
    <MainProvision>
      <Chapter Num="1">
        <Article Num="1">
          <ArticleCaption>（目的）</ArticleCaption>
          <ArticleTitle>第一条</ArticleTitle>
          <Paragraph Num="1">
            <ParagraphSentence><Sentence>この法律は、個人の権利利益を保護することを目的とする。</Sentence></ParagraphSentence>
          </Paragraph>
        </Article>
        <Article Num="2">
          <ArticleCaption>（定義）</ArticleCaption>
          <ArticleTitle>第二条</ArticleTitle>
          <Paragraph Num="1">
            <ParagraphSentence><Sentence>この法律において「個人情報」とは、生存する個人に関する情報をいう。</Sentence></ParagraphSentence>
            <Item Num="1">
              <ItemTitle>一</ItemTitle>
              <ItemSentence><Sentence>当該情報に含まれる氏名、生年月日その他の記述により特定の個人を識別することができるもの</Sentence></ItemSentence>
            </Item>
            <Item Num="2">
              <ItemTitle>二</ItemTitle>
              <ItemSentence><Sentence>個人識別符号が含まれるもの</Sentence></ItemSentence>
            </Item>
          </Paragraph>
          <Paragraph Num="2">
            <ParagraphSentence><Sentence>この法律において「個人識別符号」とは、政令で定めるものをいう。</Sentence></ParagraphSentence>
          </Paragraph>
        </Article>
      </Chapter>
      <Chapter Num="2">
        <Article Num="23_2">
          <ArticleCaption>（外国にある第三者への提供の制限）</ArticleCaption>
          <ArticleTitle>第二十三条の二</ArticleTitle>
          <Paragraph Num="1">
            <ParagraphSentence><Sentence>外国にある第三者への個人データの提供には本人の同意を要する。</Sentence></ParagraphSentence>
          </Paragraph>
        </Article>
      </Chapter>
    </MainProvision>
  </LawBody>
</Law>`

func TestParseLawXML_Metadata(t *testing.T) {
	doc, err := ParseLawXML([]byte(sampleLawXML))
	if err != nil {
		t.Fatalf("ParseLawXML failed: %v", err)
	}

	law := doc.Law
	if law.ID != "act-57-2003" {
		t.Errorf("ID = %q, want act-57-2003 (Heisei 15 = 2003)", law.ID)
	}
	if law.Title != "個人情報の保護に関する法律" {
		t.Errorf("Title = %q", law.Title)
	}
	if law.LawNumber != "平成十五年法律第五十七号" {
		t.Errorf("LawNumber = %q", law.LawNumber)
	}
	if law.ActNumber != 57 || law.ActYear != 2003 {
		t.Errorf("act = %d/%d, want 57/2003", law.ActNumber, law.ActYear)
	}
	if law.Kind != "statute" {
		t.Errorf("Kind = %q, want statute", law.Kind)
	}
	if law.Status != "in_force" {
		t.Errorf("Status = %q, want in_force", law.Status)
	}
}

func TestParseLawXML_Provisions(t *testing.T) {
	doc, err := ParseLawXML([]byte(sampleLawXML))
	if err != nil {
		t.Fatalf("ParseLawXML failed: %v", err)
	}

	// art-1 ¶1, art-2 ¶1 + two items + ¶2, art-23-2 ¶1.
	if len(doc.Provisions) != 6 {
		t.Fatalf("len(Provisions) = %d, want 6", len(doc.Provisions))
	}

	first := doc.Provisions[0]
	if first.Ref != "art-1" || first.Article != "1" || first.Paragraph != "1" {
		t.Errorf("first provision = %+v", first)
	}
	if first.Caption != "目的" {
		t.Errorf("Caption = %q, want 目的 (parentheses stripped)", first.Caption)
	}

	// Items carry their paragraph and item numbers.
	var item *struct{ Paragraph, Item string }
	for _, p := range doc.Provisions {
		if p.Article == "2" && p.Item == "2" {
			item = &struct{ Paragraph, Item string }{p.Paragraph, p.Item}
		}
	}
	if item == nil || item.Paragraph != "1" {
		t.Errorf("article 2 item 2 = %+v, want paragraph 1", item)
	}

	// Branch article numbers use the hyphen convention.
	last := doc.Provisions[len(doc.Provisions)-1]
	if last.Ref != "art-23-2" || last.Article != "23-2" {
		t.Errorf("branch article = %+v, want art-23-2", last)
	}
}

func TestParseLawXML_APIEnvelope(t *testing.T) {
	envelope := `<?xml version="1.0" encoding="UTF-8"?>
<DataRoot>
  <Result><Code>0</Code></Result>
  <ApplData>
    <LawId>415AC0000000057</LawId>
    <LawFullText>` + strings.TrimPrefix(sampleLawXML, `<?xml version="1.0" encoding="UTF-8"?>`) + `
    </LawFullText>
  </ApplData>
</DataRoot>`

	doc, err := ParseLawXML([]byte(envelope))
	if err != nil {
		t.Fatalf("ParseLawXML(envelope) failed: %v", err)
	}
	if doc.Law.ID != "act-57-2003" {
		t.Errorf("ID = %q, want act-57-2003", doc.Law.ID)
	}
	if len(doc.Provisions) != 6 {
		t.Errorf("len(Provisions) = %d, want 6", len(doc.Provisions))
	}
}

func TestParseLawXML_LawNumberFallback(t *testing.T) {
	// No Era/Year/Num attributes: metadata comes from the Kanji law number.
	input := `<Law LawType="CabinetOrder">
  <LawNum>平成十五年政令第五百七号</LawNum>
  <LawBody>
    <LawTitle>個人情報の保護に関する法律施行令</LawTitle>
    <MainProvision>
      <Article Num="1">
        <Paragraph Num="1">
          <ParagraphSentence><Sentence>本文</Sentence></ParagraphSentence>
        </Paragraph>
      </Article>
    </MainProvision>
  </LawBody>
</Law>`

	doc, err := ParseLawXML([]byte(input))
	if err != nil {
		t.Fatalf("ParseLawXML failed: %v", err)
	}
	if doc.Law.ID != "act-507-2003" {
		t.Errorf("ID = %q, want act-507-2003", doc.Law.ID)
	}
	if doc.Law.Kind != "cabinet_order" {
		t.Errorf("Kind = %q, want cabinet_order", doc.Law.Kind)
	}
}

func TestParseLawXML_Rejects(t *testing.T) {
	if _, err := ParseLawXML([]byte("<NotALaw/>")); err == nil {
		t.Error("expected error for non-law xml")
	}
	if _, err := ParseLawXML([]byte("{json}")); err == nil {
		t.Error("expected error for non-xml input")
	}
	empty := `<Law><LawBody><LawTitle>空法</LawTitle><MainProvision/></LawBody></Law>`
	if _, err := ParseLawXML([]byte(empty)); err == nil {
		t.Error("expected error for law with no provisions")
	}
}

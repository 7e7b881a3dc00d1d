package citation

import (
	"strings"
	"testing"
)

func TestParse_LeadingNative(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		input string
		want  ParsedCitation
	}{
		{
			name:  "article only",
			input: "第十七条 個人情報の保護に関する法律",
			want: ParsedCitation{
				Valid:   true,
				Kind:    KindStatute,
				Title:   "個人情報の保護に関する法律",
				Article: "17",
			},
		},
		{
			name:  "article and paragraph",
			input: "第十七条第一項 個人情報の保護に関する法律",
			want: ParsedCitation{
				Valid:     true,
				Kind:      KindStatute,
				Title:     "個人情報の保護に関する法律",
				Article:   "17",
				Paragraph: "1",
			},
		},
		{
			name:  "article paragraph item",
			input: "第十七条第一項第二号 個人情報の保護に関する法律",
			want: ParsedCitation{
				Valid:     true,
				Kind:      KindStatute,
				Title:     "個人情報の保護に関する法律",
				Article:   "17",
				Paragraph: "1",
				Item:      "2",
			},
		},
		{
			name:  "item without paragraph",
			input: "第二条第一号 個人情報の保護に関する法律",
			want: ParsedCitation{
				Valid:   true,
				Kind:    KindStatute,
				Title:   "個人情報の保護に関する法律",
				Article: "2",
				Item:    "1",
			},
		},
		{
			name:  "arabic numerals in wrapper",
			input: "第17条 個人情報の保護に関する法律",
			want: ParsedCitation{
				Valid:   true,
				Kind:    KindStatute,
				Title:   "個人情報の保護に関する法律",
				Article: "17",
			},
		},
		{
			name:  "cabinet order classified",
			input: "第三条 個人情報の保護に関する法律施行令",
			want: ParsedCitation{
				Valid:   true,
				Kind:    KindCabinetOrder,
				Title:   "個人情報の保護に関する法律施行令",
				Article: "3",
			},
		},
		{
			name:  "ministerial ordinance classified",
			input: "第五条 個人情報の保護に関する法律施行規則",
			want: ParsedCitation{
				Valid:   true,
				Kind:    KindMinisterialOrdinance,
				Title:   "個人情報の保護に関する法律施行規則",
				Article: "5",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_TrailingNative(t *testing.T) {
	p := NewParser()

	got := p.Parse("個人情報の保護に関する法律第十七条第一項")
	want := ParsedCitation{
		Valid:     true,
		Kind:      KindStatute,
		Title:     "個人情報の保護に関する法律",
		Article:   "17",
		Paragraph: "1",
	}
	if got != want {
		t.Errorf("Parse trailing native = %+v, want %+v", got, want)
	}
}

func TestParse_EnglishFull(t *testing.T) {
	p := NewParser()

	got := p.Parse("Article 17, Act on Protection of Personal Information (Act No. 57 of 2003)")
	want := ParsedCitation{
		Valid:     true,
		Kind:      KindStatute,
		TitleEN:   "Act on Protection of Personal Information",
		LawNumber: "act-57-2003",
		ActNumber: 57,
		Year:      2003,
		Article:   "17",
	}
	if got != want {
		t.Errorf("Parse english full = %+v, want %+v", got, want)
	}
}

func TestParse_EnglishFullWithParagraphAndItem(t *testing.T) {
	p := NewParser()

	got := p.Parse("Article 17, Paragraph 1, Item 2, Act on Protection of Personal Information (Act No. 57 of 2003)")
	if !got.Valid {
		t.Fatalf("Parse returned invalid: %s", got.Error)
	}
	if got.Article != "17" || got.Paragraph != "1" || got.Item != "2" {
		t.Errorf("pinpoint = %s/%s/%s, want 17/1/2", got.Article, got.Paragraph, got.Item)
	}
	if got.ActNumber != 57 || got.Year != 2003 {
		t.Errorf("act info = %d/%d, want 57/2003", got.ActNumber, got.Year)
	}
}

func TestParse_EnglishShort(t *testing.T) {
	p := NewParser()

	got := p.Parse("Art. 17, APPI")
	want := ParsedCitation{
		Valid:   true,
		Kind:    KindStatute,
		TitleEN: "APPI",
		Article: "17",
	}
	if got != want {
		t.Errorf("Parse english short = %+v, want %+v", got, want)
	}
}

func TestParse_ActIdentifier(t *testing.T) {
	p := NewParser()

	got := p.Parse("act-57-2003, art. 17")
	want := ParsedCitation{
		Valid:     true,
		Kind:      KindStatute,
		LawNumber: "act-57-2003",
		ActNumber: 57,
		Year:      2003,
		Article:   "17",
	}
	if got != want {
		t.Errorf("Parse act identifier = %+v, want %+v", got, want)
	}

	got = p.Parse("act-57-2003, art. 17, para. 2")
	if got.Paragraph != "2" {
		t.Errorf("Paragraph = %q, want 2", got.Paragraph)
	}
}

func TestParse_Unrecognized(t *testing.T) {
	p := NewParser()

	for _, input := range []string{"", "   ", "not a citation", "法律"} {
		got := p.Parse(input)
		if got.Valid {
			t.Errorf("Parse(%q).Valid = true, want false", input)
		}
		if got.Kind != KindUnknown {
			t.Errorf("Parse(%q).Kind = %s, want unknown", input, got.Kind)
		}
		if got.Error == "" {
			t.Errorf("Parse(%q).Error is empty", input)
		}
	}
}

func TestParse_ErrorNamesInput(t *testing.T) {
	p := NewParser()

	got := p.Parse("  garbled input  ")
	if !strings.Contains(got.Error, "garbled input") {
		t.Errorf("Error = %q, want it to name the trimmed input", got.Error)
	}
}

// Grammars are tried in order; the native form wins over any later
// grammar that might also match.
func TestParse_NativeTriedFirst(t *testing.T) {
	p := NewParser()

	got := p.Parse("第1条 Article 5, Something")
	if got.Title != "Article 5, Something" || got.Article != "1" {
		t.Errorf("native grammar should win: %+v", got)
	}
}

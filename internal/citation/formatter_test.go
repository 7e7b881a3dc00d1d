package citation

import "testing"

func sampleCitation() ParsedCitation {
	return ParsedCitation{
		Valid:     true,
		Kind:      KindStatute,
		Title:     "個人情報の保護に関する法律",
		TitleEN:   "Act on Protection of Personal Information",
		LawNumber: "act-57-2003",
		ActNumber: 57,
		Year:      2003,
		Article:   "17",
		Paragraph: "1",
		Item:      "2",
	}
}

func TestFormat_Styles(t *testing.T) {
	c := sampleCitation()

	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{
			name:  "full",
			style: StyleFull,
			want:  "Article 17(1)(2), Act on Protection of Personal Information (Act No. 57 of 2003)",
		},
		{
			name:  "short",
			style: StyleShort,
			want:  "Art. 17(1)(2), Act on Protection of Personal Information",
		},
		{
			name:  "pinpoint",
			style: StylePinpoint,
			want:  "Art. 17(1)(2)",
		},
		{
			name:  "japanese",
			style: StyleJapanese,
			want:  "第十七条第一項第二号 個人情報の保護に関する法律",
		},
		{
			name:  "unknown style falls back to full",
			style: Style("bogus"),
			want:  "Article 17(1)(2), Act on Protection of Personal Information (Act No. 57 of 2003)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(c, tt.style); got != tt.want {
				t.Errorf("Format(%s) = %q, want %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestFormat_NoActInfoWhenIncomplete(t *testing.T) {
	c := sampleCitation()
	c.Year = 0

	got := Format(c, StyleFull)
	want := "Article 17(1)(2), Act on Protection of Personal Information"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_NamePreference(t *testing.T) {
	c := sampleCitation()
	c.TitleEN = ""

	got := Format(c, StyleShort)
	want := "Art. 17(1)(2), 個人情報の保護に関する法律"
	if got != want {
		t.Errorf("english styles fall back to native title: %q, want %q", got, want)
	}

	c = sampleCitation()
	c.Title = ""
	got = Format(c, StyleJapanese)
	want = "第十七条第一項第二号 Act on Protection of Personal Information"
	if got != want {
		t.Errorf("japanese style falls back to english title: %q, want %q", got, want)
	}
}

func TestFormat_ItemWithoutParagraph(t *testing.T) {
	c := sampleCitation()
	c.Paragraph = ""

	if got := Format(c, StylePinpoint); got != "Art. 17(2)" {
		t.Errorf("Format pinpoint = %q, want Art. 17(2)", got)
	}
	want := "第十七条第二号 個人情報の保護に関する法律"
	if got := Format(c, StyleJapanese); got != want {
		t.Errorf("Format japanese = %q, want %q", got, want)
	}
}

func TestFormat_InvalidReturnsEmpty(t *testing.T) {
	invalid := ParsedCitation{Valid: false, Kind: KindUnknown, Error: "nope"}
	for _, style := range []Style{StyleFull, StyleShort, StylePinpoint, StyleJapanese, Style("junk")} {
		if got := Format(invalid, style); got != "" {
			t.Errorf("Format(invalid, %s) = %q, want empty", style, got)
		}
	}

	noArticle := ParsedCitation{Valid: true, Kind: KindStatute, Title: "x"}
	if got := Format(noArticle, StyleFull); got != "" {
		t.Errorf("Format without article = %q, want empty", got)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	p := NewParser()

	got := Format(p.Parse("第十七条 個人情報の保護に関する法律"), StyleJapanese)
	want := "第十七条 個人情報の保護に関する法律"
	if got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

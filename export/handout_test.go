package export

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"integrationdeck/deck"
	"integrationdeck/sizing"
)

func zipNames(t *testing.T, data []byte) map[string]bool {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a zip archive: %v", err)
	}
	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	return names
}

func TestExportDeckToWord(t *testing.T) {
	data, err := NewWordExportService().ExportDeckToWord(deck.Build(), testMetadata)
	if err != nil {
		t.Fatalf("ExportDeckToWord: %v", err)
	}
	if !zipNames(t, data)["word/document.xml"] {
		t.Error("docx lacks word/document.xml")
	}
}

func TestExportDeckToExcel(t *testing.T) {
	data, err := NewGoExcelExportService().ExportDeckToExcel(deck.Build(), sizing.DefaultTable(), testMetadata)
	if err != nil {
		t.Fatalf("ExportDeckToExcel: %v", err)
	}
	if !zipNames(t, data)["xl/workbook.xml"] {
		t.Error("xlsx lacks xl/workbook.xml")
	}
}

func TestExportDeckToPDF(t *testing.T) {
	data, err := NewPDFExportService().ExportDeckToPDF(deck.Build(), testMetadata)
	if err != nil {
		t.Fatalf("ExportDeckToPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output starts with %q, want %%PDF", data[:min(len(data), 8)])
	}
}

func TestSlideItems(t *testing.T) {
	tests := []struct {
		name  string
		slide deck.Slide
		want  []string
	}{
		{
			name:  "title",
			slide: deck.TitleSlide{Title: "T", Author: "A", Date: "D", Tags: []string{"x", "y"}},
			want:  []string{"A", "D", "x", "y"},
		},
		{
			name:  "content without body",
			slide: deck.ContentSlide{Heading: "H", BulletPoints: []string{"b1", "b2"}},
			want:  []string{"b1", "b2"},
		},
		{
			name:  "code",
			slide: deck.CodeSlide{Language: "text", Code: "a\nb"},
			want:  []string{"a", "b"},
		},
		{
			name:  "conclusion",
			slide: deck.ConclusionSlide{Heading: "H", Takeaways: []string{"t"}, CTA: "go"},
			want:  []string{"t", "go"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slideItems(tt.slide)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("slideItems = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandoutHeadingKeepsSlideNumbering(t *testing.T) {
	slides := deck.Build()
	for i, sl := range slides {
		if sl.Kind() == deck.KindCode {
			continue
		}
		if got, want := handoutHeading(sl), deck.Heading(sl); got != want {
			t.Errorf("slide %d: handout heading %q, want the slide's own %q", i+1, got, want)
		}
	}

	tests := []struct {
		slide deck.Slide
		want  string
	}{
		{slides[0], "Integration Architecture"},
		{slides[2], "1. Integration Scenario"},
		{slides[8], "Diagram (text)"},
		{slides[17], "Key Takeaways"},
	}
	for _, tt := range tests {
		if got := handoutHeading(tt.slide); got != tt.want {
			t.Errorf("handoutHeading = %q, want %q", got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := round2(sizing.MBPerMinute(500000, 1185)); got != 592.5 {
		t.Errorf("round2 = %v, want 592.5", got)
	}
}

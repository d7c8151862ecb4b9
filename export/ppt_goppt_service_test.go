package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"integrationdeck/config"
	"integrationdeck/deck"
)

var testMetadata = Metadata{
	Title:   "Banking Integration Architecture",
	Author:  "Wallace Espindola",
	Subject: "Banking Integration Architecture - Full Context Summary",
}

func newTestService(t *testing.T, themeName string) *GoPPTService {
	t.Helper()
	theme, err := config.LookupTheme(themeName)
	if err != nil {
		t.Fatalf("LookupTheme(%q): %v", themeName, err)
	}
	return NewGoPPTService(theme, true, 85)
}

func slideEntries(t *testing.T, data []byte) int {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}
	n := 0
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			n++
		}
	}
	return n
}

func TestRenderAllThemes(t *testing.T) {
	slides := deck.Build()
	for _, name := range config.ThemeNames() {
		t.Run(name, func(t *testing.T) {
			data, err := newTestService(t, name).Render(slides, testMetadata)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got := slideEntries(t, data); got != len(slides) {
				t.Errorf("archive holds %d slides, want %d", got, len(slides))
			}
		})
	}
}

func TestRenderRejectsInvalidDeck(t *testing.T) {
	svc := newTestService(t, config.DefaultTheme)

	if _, err := svc.Render(nil, testMetadata); !errors.Is(err, deck.ErrEmptyDeck) {
		t.Errorf("empty deck: got %v, want ErrEmptyDeck", err)
	}

	slides := deck.Build()[1:]
	_, err := svc.Render(slides, testMetadata)
	if !errors.Is(err, deck.ErrNoTitleSlide) {
		t.Errorf("headless deck: got %v, want ErrNoTitleSlide", err)
	}
	var se *ServiceError
	if !errors.As(err, &se) || se.Service != "GoPPT" {
		t.Errorf("error %v should be a GoPPT ServiceError", err)
	}
}

func TestReadOutlineMatchesDeck(t *testing.T) {
	slides := deck.Build()
	data, err := newTestService(t, config.DefaultTheme).Render(slides, testMetadata)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	outline, err := ReadOutline(path)
	if err != nil {
		t.Fatalf("ReadOutline: %v", err)
	}
	if len(outline.Slides) != len(slides) {
		t.Fatalf("outline has %d slides, want %d", len(outline.Slides), len(slides))
	}
	for i, sl := range slides {
		got := outline.Slides[i].Title
		if want := deck.Heading(sl); !strings.EqualFold(got, want) {
			t.Errorf("slide %d: title %q, want %q", i+1, got, want)
		}
	}

	last := outline.Slides[len(slides)-1].Texts
	if footer := fmt.Sprintf("%d / %d", len(slides), len(slides)); !containsString(last, footer) {
		t.Errorf("last slide texts %q lack footer %q", last, footer)
	}
}

func TestReadOutlineMissingFile(t *testing.T) {
	if _, err := ReadOutline(filepath.Join(t.TempDir(), "absent.pptx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   []string
	}{
		{"empty", "", 10, []string{""}},
		{"fits", "short line", 20, []string{"short line"}},
		{"breaks at space", "alpha beta gamma delta", 12, []string{"alpha beta", "gamma delta"}},
		{"hard break", "abcdefghijklmnop", 5, []string{"abcde", "fghij", "klmno", "p"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.maxLen)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestBulletAndNumberedLines(t *testing.T) {
	bullets := bulletLines([]string{"one", "alpha beta gamma delta"}, 12)
	want := []string{"• one", "• alpha beta", "   gamma delta"}
	if strings.Join(bullets, "|") != strings.Join(want, "|") {
		t.Errorf("bulletLines = %q, want %q", bullets, want)
	}

	numbered := numberedLines([]string{"alpha beta gamma delta"}, 12)
	want = []string{"1. alpha beta", "   gamma delta"}
	if strings.Join(numbered, "|") != strings.Join(want, "|") {
		t.Errorf("numberedLines = %q, want %q", numbered, want)
	}
}

func TestNonEmpty(t *testing.T) {
	got := nonEmpty("a", " ", "", "b")
	if strings.Join(got, ",") != "a,b" {
		t.Errorf("nonEmpty = %q", got)
	}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

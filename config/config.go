package config

import (
	"fmt"
	"sort"
	"strings"
)

// Handout formats that can be written next to the presentation.
const (
	HandoutDocx = "docx"
	HandoutPDF  = "pdf"
	HandoutXlsx = "xlsx"
)

// DefaultTheme is the theme the CLI renders with.
const DefaultTheme = "technical"

// PptxConfig controls how a deck is rendered.
type PptxConfig struct {
	Theme    string   `json:"theme" koanf:"theme"`                 // One of ThemeNames()
	Handouts []string `json:"handouts,omitempty" koanf:"handouts"` // Extra formats written beside the .pptx
	Footer   bool     `json:"footer" koanf:"footer"`               // Page numbers on non-title slides
	WrapAt   int      `json:"wrapAt" koanf:"wrap_at"`              // Bullet wrap width in characters
}

// DefaultPptxConfig returns the configuration used when nothing is specified.
func DefaultPptxConfig() PptxConfig {
	return PptxConfig{
		Theme:  DefaultTheme,
		Footer: true,
		WrapAt: 85,
	}
}

// Validate rejects unknown themes and handout formats, and fills in
// defaults for numeric fields that are out of range.
func (c *PptxConfig) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if _, ok := themes[c.Theme]; !ok {
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownTheme, c.Theme, strings.Join(ThemeNames(), ", "))
	}

	seen := make(map[string]bool, len(c.Handouts))
	handouts := make([]string, 0, len(c.Handouts))
	for _, h := range c.Handouts {
		h = strings.ToLower(strings.TrimSpace(h))
		switch h {
		case HandoutDocx, HandoutPDF, HandoutXlsx:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownHandout, h)
		}
		if !seen[h] {
			seen[h] = true
			handouts = append(handouts, h)
		}
	}
	c.Handouts = handouts

	if c.WrapAt < 20 {
		c.WrapAt = 85
	}
	return nil
}

// Clone returns a deep copy.
func (c PptxConfig) Clone() PptxConfig {
	out := c
	out.Handouts = append([]string(nil), c.Handouts...)
	return out
}

// Theme is a fixed palette. Colors are ARGB hex strings as GoPPT expects.
type Theme struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Accent     string `json:"accent"`
	Heading    string `json:"heading"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
	Panel      string `json:"panel"`
	CodeText   string `json:"codeText"`
}

var themes = map[string]Theme{
	"technical": {
		Name:       "technical",
		Background: "FFFFFFFF",
		Accent:     "FF0EA5E9",
		Heading:    "FF0F172A",
		Text:       "FF334155",
		Muted:      "FF94A3B8",
		Panel:      "FF0F172A",
		CodeText:   "FFE2E8F0",
	},
	"corporate": {
		Name:       "corporate",
		Background: "FFFFFFFF",
		Accent:     "FF3B82F6",
		Heading:    "FF1E40AF",
		Text:       "FF334155",
		Muted:      "FF94A3B8",
		Panel:      "FFF8FAFC",
		CodeText:   "FF1E293B",
	},
	"minimal": {
		Name:       "minimal",
		Background: "FFFFFFFF",
		Accent:     "FF64748B",
		Heading:    "FF111827",
		Text:       "FF374151",
		Muted:      "FF9CA3AF",
		Panel:      "FFF3F4F6",
		CodeText:   "FF111827",
	},
	"dark": {
		Name:       "dark",
		Background: "FF0B1120",
		Accent:     "FF22D3EE",
		Heading:    "FFF8FAFC",
		Text:       "FFCBD5E1",
		Muted:      "FF64748B",
		Panel:      "FF1E293B",
		CodeText:   "FFA5F3FC",
	},
}

// ThemeNames lists the recognized theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns the palette for name.
func LookupTheme(name string) (Theme, error) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

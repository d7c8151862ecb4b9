package export

import (
	"fmt"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"integrationdeck/deck"
)

// WordExportService writes a speaker handout using GoWord (pure Go)
type WordExportService struct{}

// NewWordExportService creates a new Word export service
func NewWordExportService() *WordExportService {
	return &WordExportService{}
}

// ExportDeckToWord renders one section per slide: heading, lead-in text,
// list items and code blocks in slide order.
func (s *WordExportService) ExportDeckToWord(slides []deck.Slide, md Metadata) ([]byte, error) {
	doc := goword.New()
	doc.Properties.Title = md.Title
	doc.Properties.Creator = md.Author
	doc.Properties.Description = md.Subject

	sec := doc.AddSection()
	sec.AddTitle(md.Title, 1)
	if md.Subject != "" {
		sec.AddText(md.Subject,
			&style.FontStyle{Size: 11, Color: "64748B"},
			&style.ParagraphStyle{Alignment: style.AlignCenter})
	}
	sec.AddTextBreak(1)

	for _, sl := range slides {
		switch v := sl.(type) {
		case deck.TitleSlide:
			sec.AddTitle(handoutHeading(v), 2)
			sec.AddText(strings.Join(nonEmpty(v.Author, v.Date), " · "),
				&style.FontStyle{Size: 11, Color: "334155"}, nil)
			if len(v.Tags) > 0 {
				sec.AddText(strings.Join(v.Tags, ", "),
					&style.FontStyle{Size: 10, Color: "0EA5E9", Bold: true}, nil)
			}
		case deck.ContentSlide:
			sec.AddTitle(handoutHeading(v), 2)
			if strings.TrimSpace(v.Body) != "" {
				sec.AddText(v.Body,
					&style.FontStyle{Size: 11, Color: "64748B", Italic: true}, nil)
			}
			for _, b := range v.BulletPoints {
				sec.AddText("• "+b,
					&style.FontStyle{Size: 11, Color: "334155"},
					&style.ParagraphStyle{Indent: 360})
			}
		case deck.CodeSlide:
			sec.AddTitle(handoutHeading(v), 2)
			for _, line := range strings.Split(v.Code, "\n") {
				if line == "" {
					sec.AddTextBreak(1)
					continue
				}
				sec.AddText(line, &style.FontStyle{Size: 9, Color: "1E293B"}, nil)
			}
		case deck.ConclusionSlide:
			sec.AddTitle(handoutHeading(v), 2)
			for n, tk := range v.Takeaways {
				sec.AddText(fmt.Sprintf("%d. %s", n+1, tk),
					&style.FontStyle{Size: 11, Color: "334155"},
					&style.ParagraphStyle{Indent: 360})
			}
			if v.CTA != "" {
				sec.AddTextBreak(1)
				sec.AddText(v.CTA,
					&style.FontStyle{Size: 10, Color: "0EA5E9", Bold: true},
					&style.ParagraphStyle{Alignment: style.AlignCenter})
			}
		}
		sec.AddTextBreak(1)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, wrapOperationError("write Word file", err)
	}
	return data, nil
}

// handoutHeading is the section title a slide gets in the printed handouts.
// Slide headings carry their own numbering, so none is added.
func handoutHeading(sl deck.Slide) string {
	if v, ok := sl.(deck.CodeSlide); ok {
		return fmt.Sprintf("Diagram (%s)", v.Language)
	}
	return deck.Heading(sl)
}

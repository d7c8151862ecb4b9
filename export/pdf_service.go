package export

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"integrationdeck/deck"
)

// PDFExportService handles PDF handout generation using maroto
type PDFExportService struct{}

// NewPDFExportService creates a new PDF export service
func NewPDFExportService() *PDFExportService {
	return &PDFExportService{}
}

var (
	pdfAccent = &props.Color{Red: 14, Green: 165, Blue: 233}
	pdfMuted  = &props.Color{Red: 100, Green: 116, Blue: 139}
	pdfText   = &props.Color{Red: 51, Green: 65, Blue: 85}
)

// ExportDeckToPDF renders the deck as a printable handout, one block per
// slide in order.
func (s *PDFExportService) ExportDeckToPDF(slides []deck.Slide, md Metadata) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	s.addHeader(m, md)
	for _, sl := range slides {
		switch v := sl.(type) {
		case deck.TitleSlide:
			s.addSection(m, handoutHeading(v))
			s.addLine(m, strings.Join(nonEmpty(v.Author, v.Date), " | "), pdfMuted)
			if len(v.Tags) > 0 {
				s.addLine(m, strings.Join(v.Tags, ", "), pdfAccent)
			}
		case deck.ContentSlide:
			s.addSection(m, handoutHeading(v))
			if strings.TrimSpace(v.Body) != "" {
				s.addLine(m, v.Body, pdfMuted)
			}
			for _, b := range v.BulletPoints {
				s.addLine(m, "- "+b, pdfText)
			}
		case deck.CodeSlide:
			s.addSection(m, handoutHeading(v))
			for _, line := range strings.Split(v.Code, "\n") {
				s.addCodeLine(m, line)
			}
		case deck.ConclusionSlide:
			s.addSection(m, handoutHeading(v))
			for n, tk := range v.Takeaways {
				s.addLine(m, fmt.Sprintf("%d. %s", n+1, tk), pdfText)
			}
			if v.CTA != "" {
				m.AddRow(4)
				m.AddRow(8,
					col.New(12).Add(
						text.New(v.CTA, props.Text{
							Family: fontfamily.Arial,
							Size:   9,
							Style:  fontstyle.Bold,
							Align:  align.Center,
							Color:  pdfAccent,
						}),
					),
				)
			}
		}
		m.AddRow(5)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, wrapOperationError("generate PDF", err)
	}
	return document.GetBytes(), nil
}

func (s *PDFExportService) addHeader(m core.Maroto, md Metadata) {
	m.AddRow(20,
		col.New(12).Add(
			text.New(md.Title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  pdfAccent,
			}),
		),
	)
	if md.Subject != "" {
		m.AddRow(8,
			col.New(12).Add(
				text.New(md.Subject, props.Text{
					Family: fontfamily.Arial,
					Size:   9,
					Align:  align.Center,
					Color:  pdfMuted,
				}),
			),
		)
	}
	m.AddRow(5)
}

func (s *PDFExportService) addSection(m core.Maroto, title string) {
	m.AddRow(10,
		col.New(12).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   12,
				Style:  fontstyle.Bold,
			}),
		),
	)
}

func (s *PDFExportService) addLine(m core.Maroto, line string, color *props.Color) {
	m.AddRow(7,
		col.New(12).Add(
			text.New(line, props.Text{
				Family: fontfamily.Arial,
				Size:   9,
				Left:   4,
				Color:  color,
			}),
		),
	)
}

func (s *PDFExportService) addCodeLine(m core.Maroto, line string) {
	if strings.TrimSpace(line) == "" {
		m.AddRow(3)
		return
	}
	m.AddRow(5,
		col.New(12).Add(
			text.New(line, props.Text{
				Family: fontfamily.Courier,
				Size:   8,
				Left:   4,
			}),
		),
	)
}

package export

import (
	"bytes"
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"integrationdeck/config"
	"integrationdeck/deck"
)

// GoPPTService lays out deck slides with GoPPT (pure Go, zero dependencies)
type GoPPTService struct {
	theme  config.Theme
	footer bool
	wrapAt int
}

// NewGoPPTService creates a renderer for the given palette.
func NewGoPPTService(theme config.Theme, footer bool, wrapAt int) *GoPPTService {
	return &GoPPTService{theme: theme, footer: footer, wrapAt: wrapAt}
}

// 16:9 layout
const (
	emuPerInch = 914400

	gopptMarginLeft = int64(0.4 * emuPerInch)

	gopptContentWidth = int64(9.2 * emuPerInch)
	gopptSlideWidth   = int64(10.0 * emuPerInch)
	gopptSlideHeight  = int64(5.625 * emuPerInch)

	// pt
	gopptFontTitle    = 36
	gopptFontSubtitle = 20
	gopptFontHeading  = 28
	gopptFontBullet   = 18
	gopptFontBody     = 16
	gopptFontTag      = 14
	gopptFontCode     = 11
	gopptFontSmall    = 12
	gopptFontFooter   = 9
)

func inches(v float64) int64 {
	return int64(v * emuPerInch)
}

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// helper: set paragraph alignment to right
func alignRight(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
}

// Render draws every slide in order and returns the .pptx bytes.
func (s *GoPPTService) Render(slides []deck.Slide, md Metadata) ([]byte, error) {
	if err := deck.Validate(slides); err != nil {
		return nil, WrapError("GoPPT", "Render", err)
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = md.Title
	p.GetDocumentProperties().Creator = md.Author

	total := len(slides)
	for i, sl := range slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		s.addBackground(slide)

		switch v := sl.(type) {
		case deck.TitleSlide:
			s.addTitleSlide(slide, v)
		case deck.ContentSlide:
			s.addContentSlide(slide, v)
		case deck.CodeSlide:
			s.addCodeSlide(slide, v)
		case deck.ConclusionSlide:
			s.addConclusionSlide(slide, v)
		default:
			return nil, WrapError("GoPPT", "Render", fmt.Errorf("%w: slide %d is %T", deck.ErrUnknownKind, i+1, sl))
		}

		if s.footer && sl.Kind() != deck.KindTitle {
			s.addFooter(slide, i+1, total)
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, wrapOperationError("create PPT writer", err)
	}
	pw, ok := w.(*ppt.PPTXWriter)
	if !ok {
		return nil, fmt.Errorf("unexpected PPT writer %T", w)
	}

	var buf bytes.Buffer
	if err := pw.WriteTo(&buf); err != nil {
		return nil, wrapOperationError("save PPT", err)
	}
	return buf.Bytes(), nil
}

func (s *GoPPTService) addBackground(slide *ppt.Slide) {
	bg := slide.CreateRichTextShape()
	bg.SetOffsetX(0).SetOffsetY(0)
	bg.SetWidth(gopptSlideWidth).SetHeight(gopptSlideHeight)
	bg.SetFill(solidFill(s.theme.Background))
}

func (s *GoPPTService) addBar(slide *ppt.Slide, y, height float64) {
	bar := slide.CreateRichTextShape()
	bar.SetOffsetX(0).SetOffsetY(inches(y))
	bar.SetWidth(gopptSlideWidth).SetHeight(inches(height))
	bar.SetFill(solidFill(s.theme.Accent))
}

func (s *GoPPTService) addTitleSlide(slide *ppt.Slide, v deck.TitleSlide) {
	s.addBar(slide, 0, 0.15)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(1.5))
	titleShape.SetWidth(gopptContentWidth).SetHeight(inches(1.0))
	tr := titleShape.CreateTextRun(v.Title)
	tr.GetFont().SetSize(gopptFontTitle).SetBold(true).SetColor(ppt.NewColor(s.theme.Heading))
	alignCenter(titleShape.GetActiveParagraph())

	byline := strings.TrimSpace(strings.Join(nonEmpty(v.Author, v.Date), " · "))
	if byline != "" {
		byShape := slide.CreateRichTextShape()
		byShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(2.7))
		byShape.SetWidth(gopptContentWidth).SetHeight(inches(0.6))
		byTr := byShape.CreateTextRun(byline)
		byTr.GetFont().SetSize(gopptFontSubtitle).SetColor(ppt.NewColor(s.theme.Text))
		alignCenter(byShape.GetActiveParagraph())
	}

	if len(v.Tags) > 0 {
		tags := make([]string, 0, len(v.Tags))
		for _, t := range v.Tags {
			tags = append(tags, "#"+t)
		}
		tagShape := slide.CreateRichTextShape()
		tagShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(3.5))
		tagShape.SetWidth(gopptContentWidth).SetHeight(inches(0.5))
		tagTr := tagShape.CreateTextRun(strings.Join(tags, "   "))
		tagTr.GetFont().SetSize(gopptFontTag).SetBold(true).SetColor(ppt.NewColor(s.theme.Accent))
		alignCenter(tagShape.GetActiveParagraph())
	}

	s.addBar(slide, 5.5, 0.125)
}

// addSlideHeader adds a consistent header to non-title slides
func (s *GoPPTService) addSlideHeader(slide *ppt.Slide, title string) {
	s.addBar(slide, 0, 0.08)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(0.3))
	titleShape.SetWidth(gopptContentWidth).SetHeight(inches(0.6))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(gopptFontHeading).SetBold(true).SetColor(ppt.NewColor(s.theme.Heading))
}

func (s *GoPPTService) addContentSlide(slide *ppt.Slide, v deck.ContentSlide) {
	s.addSlideHeader(slide, v.Heading)

	listY := 1.1
	if strings.TrimSpace(v.Body) != "" {
		bodyShape := slide.CreateRichTextShape()
		bodyShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(1.0))
		bodyShape.SetWidth(gopptContentWidth).SetHeight(inches(0.5))
		bodyTr := bodyShape.CreateTextRun(v.Body)
		bodyTr.GetFont().SetSize(gopptFontBody).SetColor(ppt.NewColor(s.theme.Muted))
		listY = 1.6
	}

	if len(v.BulletPoints) == 0 {
		return
	}
	listShape := slide.CreateRichTextShape()
	listShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(listY))
	listShape.SetWidth(gopptContentWidth).SetHeight(inches(5.1 - listY))
	s.writeList(listShape, bulletLines(v.BulletPoints, s.wrapAt))
}

func (s *GoPPTService) addCodeSlide(slide *ppt.Slide, v deck.CodeSlide) {
	s.addBar(slide, 0, 0.08)

	if v.Language != "" {
		langShape := slide.CreateRichTextShape()
		langShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(0.15))
		langShape.SetWidth(gopptContentWidth).SetHeight(inches(0.3))
		langTr := langShape.CreateTextRun(strings.ToUpper(v.Language))
		langTr.GetFont().SetSize(gopptFontFooter).SetBold(true).SetColor(ppt.NewColor(s.theme.Muted))
		alignRight(langShape.GetActiveParagraph())
	}

	panel := slide.CreateRichTextShape()
	panel.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(0.5))
	panel.SetWidth(gopptContentWidth).SetHeight(inches(4.7))
	panel.SetFill(solidFill(s.theme.Panel))

	for i, line := range strings.Split(v.Code, "\n") {
		if i > 0 {
			panel.CreateParagraph()
		}
		if line == "" {
			line = " "
		}
		tr := panel.CreateTextRun(line)
		tr.GetFont().SetSize(gopptFontCode).SetColor(ppt.NewColor(s.theme.CodeText))
	}
}

func (s *GoPPTService) addConclusionSlide(slide *ppt.Slide, v deck.ConclusionSlide) {
	s.addSlideHeader(slide, v.Heading)

	if len(v.Takeaways) > 0 {
		listShape := slide.CreateRichTextShape()
		listShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(1.1))
		listShape.SetWidth(gopptContentWidth).SetHeight(inches(3.3))
		s.writeList(listShape, numberedLines(v.Takeaways, s.wrapAt))
	}

	if v.CTA != "" {
		ctaShape := slide.CreateRichTextShape()
		ctaShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(4.55))
		ctaShape.SetWidth(gopptContentWidth).SetHeight(inches(0.5))
		ctaShape.SetFill(solidFill(s.theme.Accent))
		ctaTr := ctaShape.CreateTextRun(v.CTA)
		ctaTr.GetFont().SetSize(gopptFontSmall).SetBold(true).SetColor(ppt.ColorWhite)
		alignCenter(ctaShape.GetActiveParagraph())
	}
}

func (s *GoPPTService) addFooter(slide *ppt.Slide, n, total int) {
	footerShape := slide.CreateRichTextShape()
	footerShape.SetOffsetX(gopptMarginLeft).SetOffsetY(inches(5.25))
	footerShape.SetWidth(gopptContentWidth).SetHeight(inches(0.3))
	ftTr := footerShape.CreateTextRun(fmt.Sprintf("%d / %d", n, total))
	ftTr.GetFont().SetSize(gopptFontFooter).SetColor(ppt.NewColor(s.theme.Muted))
	alignRight(footerShape.GetActiveParagraph())
}

// writeList puts one paragraph per line into shape.
func (s *GoPPTService) writeList(shape *ppt.RichTextShape, lines []string) {
	for i, line := range lines {
		if i > 0 {
			shape.CreateParagraph()
		}
		tr := shape.CreateTextRun(line)
		tr.GetFont().SetSize(gopptFontBullet).SetColor(ppt.NewColor(s.theme.Text))
	}
}

// bulletLines prefixes each item with a bullet and indents its wrapped
// continuation lines.
func bulletLines(items []string, width int) []string {
	var out []string
	for _, item := range items {
		for j, l := range wrapText(item, width) {
			if j == 0 {
				out = append(out, "• "+l)
			} else {
				out = append(out, "   "+l)
			}
		}
	}
	return out
}

func numberedLines(items []string, width int) []string {
	var out []string
	for i, item := range items {
		prefix := fmt.Sprintf("%d. ", i+1)
		for j, l := range wrapText(item, width) {
			if j == 0 {
				out = append(out, prefix+l)
			} else {
				out = append(out, strings.Repeat(" ", len(prefix))+l)
			}
		}
	}
	return out
}

// wrapText wraps text to fit within maxLen characters, breaking at spaces
// in the second half of the line when possible.
func wrapText(text string, maxLen int) []string {
	if len(text) == 0 {
		return []string{""}
	}

	var lines []string
	runes := []rune(text)

	for len(runes) > 0 {
		if len(runes) <= maxLen {
			lines = append(lines, string(runes))
			break
		}

		breakPoint := maxLen
		for i := maxLen; i > maxLen/2; i-- {
			if runes[i] == ' ' {
				breakPoint = i + 1
				break
			}
		}

		lines = append(lines, strings.TrimRight(string(runes[:breakPoint]), " "))
		runes = runes[breakPoint:]

		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}

	return lines
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

package export

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// Outline is the text skeleton of a .pptx file.
type Outline struct {
	Slides []OutlineSlide `json:"slides"`
}

// OutlineSlide holds the first text on a slide as its title and every other
// non-empty paragraph in drawing order.
type OutlineSlide struct {
	Title string   `json:"title"`
	Texts []string `json:"texts,omitempty"`
}

// ReadOutline reads a PPTX file and returns its per-slide text.
func ReadOutline(path string) (*Outline, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT file: %w", err)
	}

	slides := pres.GetAllSlides()
	out := &Outline{Slides: make([]OutlineSlide, 0, len(slides))}
	for _, slide := range slides {
		var sp OutlineSlide
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
				if sp.Title == "" {
					sp.Title = text
				} else {
					sp.Texts = append(sp.Texts, text)
				}
			}
		}
		out.Slides = append(out.Slides, sp)
	}
	return out, nil
}

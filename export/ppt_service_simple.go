package export

import (
	"integrationdeck/config"
	"integrationdeck/deck"
)

// PPTExportService handles PowerPoint generation using GoPPT (pure Go, zero dependencies)
type PPTExportService struct {
	service *GoPPTService
}

// NewPPTExportService creates a PPT export service for a validated config.
func NewPPTExportService(cfg config.PptxConfig) (*PPTExportService, error) {
	theme, err := config.LookupTheme(cfg.Theme)
	if err != nil {
		return nil, WrapError("PPTExport", "New", err)
	}
	return &PPTExportService{
		service: NewGoPPTService(theme, cfg.Footer, cfg.WrapAt),
	}, nil
}

// ExportDeckToPPT renders slides to .pptx bytes
func (s *PPTExportService) ExportDeckToPPT(slides []deck.Slide, md Metadata) ([]byte, error) {
	return s.service.Render(slides, md)
}

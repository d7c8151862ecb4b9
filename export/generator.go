package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"

	"integrationdeck/config"
	"integrationdeck/deck"
	"integrationdeck/logger"
	"integrationdeck/sizing"
)

// PowerPointGenerator writes a deck to disk as .pptx, plus any handouts the
// config asks for.
type PowerPointGenerator struct {
	cfg   config.PptxConfig
	log   *logger.Logger
	ppt   *PPTExportService
	word  *WordExportService
	pdf   *PDFExportService
	excel *GoExcelExportService
}

// NewPowerPointGenerator validates cfg and resolves its theme. A nil log
// discards output.
func NewPowerPointGenerator(cfg config.PptxConfig, log *logger.Logger) (*PowerPointGenerator, error) {
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, WrapError("PowerPointGenerator", "New", err)
	}
	pptService, err := NewPPTExportService(cfg)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewLogger()
	}
	return &PowerPointGenerator{
		cfg:   cfg,
		log:   log.WithComponent("export"),
		ppt:   pptService,
		word:  NewWordExportService(),
		pdf:   NewPDFExportService(),
		excel: NewGoExcelExportService(),
	}, nil
}

// Config returns a copy of the validated configuration.
func (g *PowerPointGenerator) Config() config.PptxConfig {
	return g.cfg.Clone()
}

// GeneratePresentation writes the deck to outputPath and reports success.
// Failures are logged, never returned.
func (g *PowerPointGenerator) GeneratePresentation(slides []deck.Slide, outputPath string, md Metadata) bool {
	runID := uuid.New().String()
	start := time.Now()

	g.log.Event().
		Str("run", runID).
		Str("theme", g.cfg.Theme).
		Int("slides", len(slides)).
		Str("path", outputPath).
		Msg("generating presentation")

	written, err := g.Generate(slides, outputPath, md)
	if err != nil {
		g.log.Errorf(err, "[%s] presentation generation failed", runID)
		return false
	}

	g.log.Event().
		Str("run", runID).
		Strs("files", written).
		Dur("elapsed", time.Since(start)).
		Msg("presentation generated")
	g.verify(runID, outputPath, len(slides))
	return true
}

// verify reads the written deck back and logs what it found. The file is
// already in place, so a mismatch is reported but does not fail the run.
func (g *PowerPointGenerator) verify(runID, path string, want int) {
	outline, err := ReadOutline(path)
	if err != nil {
		g.log.Errorf(err, "[%s] read-back of %s failed", runID, path)
		return
	}
	got := len(outline.Slides)
	if got != want {
		g.log.Errorf(fmt.Errorf("read back %d slides, want %d", got, want),
			"[%s] read-back of %s does not match the deck", runID, path)
		return
	}
	g.log.Event().
		Str("run", runID).
		Int("slides", got).
		Msg("read-back verified")
}

// Generate renders the deck and its handouts, then writes each file
// atomically. It returns the paths written. Nothing is written unless every
// output renders.
func (g *PowerPointGenerator) Generate(slides []deck.Slide, outputPath string, md Metadata) ([]string, error) {
	if strings.TrimSpace(outputPath) == "" {
		return nil, WrapError("PowerPointGenerator", "Generate", fmt.Errorf("empty output path"))
	}

	for _, h := range g.cfg.Handouts {
		// Compared case-insensitively: deck.PDF and deck.pdf are one file on
		// some filesystems.
		if strings.EqualFold(filepath.Clean(HandoutPath(outputPath, h)), filepath.Clean(outputPath)) {
			return nil, WrapError("PowerPointGenerator", "Generate",
				fmt.Errorf("%w: %s handout would overwrite %s", ErrPathCollision, h, outputPath))
		}
	}

	type output struct {
		path string
		data []byte
	}

	data, err := g.ppt.ExportDeckToPPT(slides, md)
	if err != nil {
		return nil, WrapError("PPTExport", "Render", err)
	}
	outputs := []output{{path: outputPath, data: data}}

	for _, h := range g.cfg.Handouts {
		data, err := g.renderHandout(h, slides, md)
		if err != nil {
			return nil, WrapError("Handout", h, err)
		}
		outputs = append(outputs, output{path: HandoutPath(outputPath, h), data: data})
	}

	written := make([]string, 0, len(outputs))
	for _, o := range outputs {
		if err := g.writeFile(o.path, o.data); err != nil {
			return written, err
		}
		g.log.Debugf("wrote %s (%d bytes)", o.path, len(o.data))
		written = append(written, o.path)
	}
	return written, nil
}

func (g *PowerPointGenerator) renderHandout(format string, slides []deck.Slide, md Metadata) ([]byte, error) {
	switch format {
	case config.HandoutDocx:
		return g.word.ExportDeckToWord(slides, md)
	case config.HandoutPDF:
		return g.pdf.ExportDeckToPDF(slides, md)
	case config.HandoutXlsx:
		return g.excel.ExportDeckToExcel(slides, sizing.DefaultTable(), md)
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownHandout, format)
}

func (g *PowerPointGenerator) writeFile(path string, data []byte) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return wrapOperationError("create pending file "+path, err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			g.log.Debugf("cleanup pending file %s: %v", path, err)
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return wrapOperationError("write "+path, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return wrapOperationError("atomically replace "+path, err)
	}
	return nil
}

// HandoutPath returns the path of a handout written beside outputPath.
func HandoutPath(outputPath, format string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + "." + format
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"integrationdeck/deck"
	"integrationdeck/export"
	"integrationdeck/logger"
)

// DefaultOutputName is the file written next to the executable.
const DefaultOutputName = "banking-integration-architecture.pptx"

// deckMetadata is recorded in the generated document properties.
var deckMetadata = export.Metadata{
	Title:   "Banking Integration Architecture",
	Author:  "Wallace Espindola",
	Subject: "Banking Integration Architecture - Full Context Summary",
}

// PresentationGenerator turns slides into a file at outputPath and reports
// whether it succeeded.
type PresentationGenerator interface {
	GeneratePresentation(slides []deck.Slide, outputPath string, md export.Metadata) bool
}

// newCLILogger returns the process logger. Entries go to a dated file under
// logDir when one is given and to a console writer on stderr otherwise.
func newCLILogger(stderr io.Writer, logDir string) *logger.Logger {
	log := logger.NewLogger()
	log.SetOutput(zerolog.ConsoleWriter{Out: stderr, TimeFormat: "15:04:05"})
	if logDir != "" {
		if err := log.Init(logDir); err != nil {
			log.Errorf(err, "file logging unavailable, using stderr")
		}
	}
	return log
}

// outputDir returns the directory holding the running executable, or the
// working directory when that cannot be resolved.
func outputDir() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// run builds the deck, hands it to gen and reports the outcome on out.
// It returns the process exit code.
func run(out io.Writer, gen PresentationGenerator, dir string, log *logger.Logger) int {
	slides := deck.Build()
	path := filepath.Join(dir, DefaultOutputName)
	log.Logf("generating %d slides into %s", len(slides), path)

	if !gen.GeneratePresentation(slides, path, deckMetadata) {
		fmt.Fprintln(out, "Failed to generate presentation")
		return 1
	}

	fmt.Fprintf(out, "Slides generated: %d slides\n", len(slides))
	fmt.Fprintf(out, "Output: %s\n", path)
	return 0
}

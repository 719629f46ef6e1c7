// Package extract prints the paragraphs and tables of a document as a
// plain-text transcript in document order.
package extract

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/roboco-io/docxseq/internal/ir"
	"github.com/roboco-io/docxseq/internal/parser"
	"github.com/roboco-io/docxseq/internal/parser/docx"
)

// Opener opens the document at path for parsing.
type Opener func(path string) (parser.Parser, error)

// DocxOpener returns an Opener backed by the .docx parser.
func DocxOpener(opts parser.Options) Opener {
	return func(path string) (parser.Parser, error) {
		return docx.New(path, opts)
	}
}

// Extractor writes transcripts to out and diagnostics to errOut.
type Extractor struct {
	out    io.Writer
	errOut io.Writer
	open   Opener
	logger zerolog.Logger
}

// New creates an Extractor.
func New(out, errOut io.Writer, open Opener, logger zerolog.Logger) *Extractor {
	return &Extractor{
		out:    out,
		errOut: errOut,
		open:   open,
		logger: logger,
	}
}

// Run extracts the document at path. Any failure is reported on errOut and
// also returned; callers decide whether it affects the exit status.
func (e *Extractor) Run(path string) error {
	p, err := e.open(path)
	if err != nil {
		e.report(path, err)
		return err
	}
	defer p.Close()

	w := bufio.NewWriter(e.out)

	fmt.Fprintf(w, "\n--- [START] Extracting content from: %s ---\n", path)

	doc, err := p.Parse()
	if err != nil {
		// keep what was printed before the failure
		w.Flush()
		e.report(path, err)
		return err
	}

	WriteDocument(w, doc)

	fmt.Fprintf(w, "\n--- [END] Extraction complete for: %s ---\n", path)

	if err := w.Flush(); err != nil {
		err = parser.NewError(parser.KindExtractionFailure, path, "failed to write output", err)
		e.report(path, err)
		return err
	}

	paragraphs, tables := doc.Counts()
	e.logger.Debug().
		Str("path", path).
		Int("paragraphs", paragraphs).
		Int("tables", tables).
		Msg("extraction complete")

	return nil
}

// report writes the diagnostic for err.
func (e *Extractor) report(path string, err error) {
	kind := parser.KindOf(err)
	e.logger.Debug().Err(err).Str("path", path).Str("kind", kind.String()).Msg("extraction failed")

	if kind == parser.KindFileNotFound {
		fmt.Fprintf(e.errOut, "Error: File not found at '%s'\n", path)
		return
	}

	fmt.Fprintf(e.errOut, "An error occurred: %v\n", err)
	fmt.Fprintln(e.errOut, "Please ensure the file is a valid .docx file and you have permissions to read it.")
}

// WriteDocument writes every block of doc in order.
func WriteDocument(w io.Writer, doc *ir.Document) {
	for _, block := range doc.Content {
		switch block.Type {
		case ir.BlockTypeParagraph:
			if block.Paragraph != nil {
				WriteParagraph(w, block.Paragraph)
			}
		case ir.BlockTypeTable:
			if block.Table != nil {
				WriteTable(w, block.Table)
			}
		}
	}
}

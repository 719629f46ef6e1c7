// Package parser provides the interfaces shared by document parsers.
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/roboco-io/docxseq/internal/ir"
)

// Extension is the file suffix accepted on the command line.
const Extension = ".docx"

// Parser is the interface for document parsers.
type Parser interface {
	// Parse walks the document body and returns its blocks in order.
	Parse() (*ir.Document, error)

	// Close releases any resources held by the parser.
	Close() error
}

// Format represents a container format.
type Format int

const (
	FormatUnknown Format = iota
	FormatDOCX
	FormatOLE // OLE2 compound file: legacy .doc or an encrypted package
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatDOCX:
		return "docx"
	case FormatOLE:
		return "ole"
	default:
		return "unknown"
	}
}

// DetectFormat detects the document format from the file path.
// The suffix check is case-sensitive.
func DetectFormat(path string) Format {
	if strings.HasSuffix(path, Extension) {
		return FormatDOCX
	}
	return FormatUnknown
}

// DetectFormatFromReader detects the container by reading magic bytes.
func DetectFormatFromReader(r io.ReaderAt) (Format, error) {
	buf := make([]byte, 8)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if n < 4 {
		return FormatUnknown, fmt.Errorf("file too small to detect format")
	}

	// ZIP local file header
	if buf[0] == 'P' && buf[1] == 'K' {
		return FormatDOCX, nil
	}

	// OLE/CFBF
	if buf[0] == 0xD0 && buf[1] == 0xCF && buf[2] == 0x11 && buf[3] == 0xE0 {
		return FormatOLE, nil
	}

	return FormatUnknown, nil
}

// Options contains parser configuration options.
type Options struct {
	Logger zerolog.Logger
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Logger: zerolog.Nop(),
	}
}

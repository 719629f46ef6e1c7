package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"

	"github.com/richardlehane/mscfb"
)

// mainPart is the package part holding the document body.
const mainPart = "word/document.xml"

// Stream names that identify what an OLE2 compound file holds.
const (
	streamEncryptedPackage = "EncryptedPackage"
	streamWordDocument     = "WordDocument"
)

var (
	errNotPackage      = errors.New("file is not a zip package")
	errMissingMainPart = fmt.Errorf("package has no %s part", mainPart)
	errEncrypted       = errors.New("document is password protected")
	errLegacyDocument  = errors.New("file is a legacy Word 97-2003 binary document, not .docx")
	errUnknownOLE      = errors.New("file is an OLE2 compound file, not a .docx package")
)

// verifyPackage checks that the zip package carries a main document part.
func verifyPackage(r io.ReaderAt, size int64) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return err
	}
	for _, f := range zr.File {
		if f.Name == mainPart {
			return nil
		}
	}
	return errMissingMainPart
}

// oleStreamNames lists the entries of an OLE2 compound file.
func oleStreamNames(r io.ReaderAt) ([]string, error) {
	doc, err := mscfb.New(r)
	if err != nil {
		return nil, fmt.Errorf("OLE2 parse failed: %w", err)
	}

	names := make([]string, 0, len(doc.File))
	for _, entry := range doc.File {
		names = append(names, entry.Name)
	}
	return names, nil
}

// classifyOLE explains why a compound file cannot be read as .docx.
// Password-protected .docx files are stored as an OLE2 container with an
// EncryptedPackage stream.
func classifyOLE(names []string) error {
	legacy := false
	for _, name := range names {
		switch name {
		case streamEncryptedPackage:
			return errEncrypted
		case streamWordDocument:
			legacy = true
		}
	}
	if legacy {
		return errLegacyDocument
	}
	return errUnknownOLE
}

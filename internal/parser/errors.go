package parser

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies a failure for reporting.
type Kind int

const (
	// KindExtractionFailure covers every failure to open or walk a document
	// that is not a missing file, including unanticipated ones.
	KindExtractionFailure Kind = iota
	// KindFileNotFound means the document path does not exist.
	KindFileNotFound
	// KindUsage means the command line was rejected before any file access.
	KindUsage
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "file not found"
	case KindUsage:
		return "usage"
	default:
		return "extraction failure"
	}
}

// Error carries a Kind, the document path and a free-text detail.
type Error struct {
	Kind   Kind
	Path   string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Detail
	}
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Detail, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error of the given kind.
func NewError(kind Kind, path, detail string, err error) *Error {
	return &Error{Kind: kind, Path: path, Detail: detail, Err: err}
}

// OpenError classifies a failure to open path. A missing file becomes
// KindFileNotFound, everything else KindExtractionFailure.
func OpenError(path string, err error) *Error {
	if errors.Is(err, fs.ErrNotExist) {
		return NewError(KindFileNotFound, path, "file not found", err)
	}
	return NewError(KindExtractionFailure, path, "cannot open document", err)
}

// KindOf returns the Kind of err. Errors that are not *Error are
// extraction failures.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return KindExtractionFailure
}

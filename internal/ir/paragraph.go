package ir

import "strings"

// Paragraph is a block of running text. Text is kept exactly as the
// document holds it, including surrounding whitespace.
type Paragraph struct {
	Text string
}

// NewParagraph creates a new paragraph with the given text.
func NewParagraph(text string) *Paragraph {
	return &Paragraph{Text: text}
}

// IsBlank reports whether the paragraph has no visible text.
func (p *Paragraph) IsBlank() bool {
	return strings.TrimSpace(p.Text) == ""
}

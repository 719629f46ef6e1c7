package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/roboco-io/docxseq/internal/ir"
)

// CellSeparator joins the cells of a table row.
const CellSeparator = " | "

// WriteParagraph writes a paragraph section. Blank paragraphs are skipped;
// the text of the others is written untrimmed.
func WriteParagraph(w io.Writer, p *ir.Paragraph) {
	if p.IsBlank() {
		return
	}
	fmt.Fprint(w, "\n[Paragraph]:\n")
	fmt.Fprintln(w, p.Text)
}

// WriteTable writes a table header followed by one line per row.
func WriteTable(w io.Writer, t *ir.TableBlock) {
	fmt.Fprintf(w, "\n[Table (Rows: %d, Cols: %d)]:\n", t.Rows, t.Cols)
	for i, row := range t.Cells {
		fmt.Fprintln(w, FormatRow(i+1, row))
	}
}

// FormatRow renders row n (1-based) as "  Row n: | a | b |".
func FormatRow(n int, row []ir.Cell) string {
	texts := make([]string, len(row))
	for i, cell := range row {
		texts[i] = CellText(cell.Text)
	}
	return fmt.Sprintf("  Row %d: | %s |", n, strings.Join(texts, CellSeparator))
}

// CellText flattens soft line breaks to spaces and trims the result.
func CellText(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
}

// Package docx provides a parser for Office Open XML word-processing
// documents (.docx), backed by github.com/fumiama/go-docx.
package docx

import (
	"fmt"
	"os"
	"strings"

	godocx "github.com/fumiama/go-docx"

	"github.com/roboco-io/docxseq/internal/ir"
	"github.com/roboco-io/docxseq/internal/parser"
)

// Parser parses .docx documents.
type Parser struct {
	path    string
	file    *os.File
	doc     *godocx.Docx
	options parser.Options
}

var _ parser.Parser = (*Parser)(nil)

// New opens the document at path and loads it through the document model.
// The returned Parser must be closed.
func New(path string, opts parser.Options) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, parser.OpenError(path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, parser.NewError(parser.KindExtractionFailure, path, "cannot stat document", err)
	}

	p := &Parser{
		path:    path,
		file:    f,
		options: opts,
	}

	if err := p.load(info.Size()); err != nil {
		p.Close()
		return nil, err
	}

	p.options.Logger.Debug().
		Str("path", path).
		Int64("size", info.Size()).
		Int("items", len(bodyItems(p.doc))).
		Msg("document loaded")

	return p, nil
}

// load checks the container and hands it to the document model.
func (p *Parser) load(size int64) (err error) {
	defer p.recoverInto(&err)

	format, err := parser.DetectFormatFromReader(p.file)
	if err != nil {
		return p.fail("not a Word document", err)
	}

	switch format {
	case parser.FormatDOCX:
	case parser.FormatOLE:
		names, err := oleStreamNames(p.file)
		if err != nil {
			return p.fail("not a Word document", err)
		}
		return p.fail("", classifyOLE(names))
	default:
		return p.fail("not a Word document", errNotPackage)
	}

	if err := verifyPackage(p.file, size); err != nil {
		return p.fail("not a Word document", err)
	}

	doc, err := godocx.Parse(p.file, size)
	if err != nil {
		return p.fail("failed to parse document", err)
	}
	p.doc = doc
	return nil
}

// Parse implements the Parser interface. Paragraphs and tables are returned
// in body order; other body elements are skipped.
func (p *Parser) Parse() (doc *ir.Document, err error) {
	defer p.recoverInto(&err)

	if p.doc == nil {
		return nil, p.fail("document is not loaded", nil)
	}

	doc = ir.NewDocument()
	for i, item := range bodyItems(p.doc) {
		switch block := item.(type) {
		case *godocx.Paragraph:
			doc.AddParagraph(ir.NewParagraph(paragraphText(block)))
		case *godocx.Table:
			doc.AddTable(convertTable(block))
		default:
			p.options.Logger.Debug().
				Int("index", i).
				Str("type", fmt.Sprintf("%T", item)).
				Msg("skipping body item")
		}
	}

	return doc, nil
}

// Close releases resources.
func (p *Parser) Close() error {
	if p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	return err
}

// bodyItems is the single place that reads the document model's ordered
// body content.
func bodyItems(doc *godocx.Docx) []interface{} {
	return doc.Document.Body.Items
}

// convertTable lays each row out on the table grid: a cell spanning several
// grid columns repeats its text once per column, and a vertically merged
// continuation cell repeats the text of the cell above it.
func convertTable(t *godocx.Table) *ir.TableBlock {
	table := ir.NewTable(gridCols(t))

	var above []string
	for _, row := range t.TableRows {
		if row == nil {
			continue
		}
		texts := make([]string, 0, len(row.TableCells))
		for _, cell := range row.TableCells {
			text := cellText(cell)
			if continuesMerge(cell) && len(texts) < len(above) {
				text = above[len(texts)]
			}
			for n := gridSpan(cell); n > 0; n-- {
				texts = append(texts, text)
			}
		}
		table.AppendRow(texts...)
		above = texts
	}

	// no <w:tblGrid>
	if table.Cols == 0 {
		table.Cols = table.WidestRow()
	}

	return table
}

func gridCols(t *godocx.Table) int {
	if t.TableGrid == nil {
		return 0
	}
	return len(t.TableGrid.GridCols)
}

func gridSpan(c *godocx.WTableCell) int {
	if c == nil || c.TableCellProperties == nil || c.TableCellProperties.GridSpan == nil {
		return 1
	}
	if n := c.TableCellProperties.GridSpan.Val; n > 1 {
		return n
	}
	return 1
}

// continuesMerge reports whether c continues a vertical merge started in an
// earlier row. A bare <w:vMerge/> means "continue".
func continuesMerge(c *godocx.WTableCell) bool {
	if c == nil || c.TableCellProperties == nil || c.TableCellProperties.VMerge == nil {
		return false
	}
	return c.TableCellProperties.VMerge.Val != "restart"
}

// cellText joins the cell's paragraphs with newlines.
func cellText(c *godocx.WTableCell) string {
	if c == nil {
		return ""
	}
	texts := make([]string, 0, len(c.Paragraphs))
	for _, para := range c.Paragraphs {
		texts = append(texts, paragraphText(para))
	}
	return strings.Join(texts, "\n")
}

func (p *Parser) fail(detail string, err error) *parser.Error {
	return parser.NewError(parser.KindExtractionFailure, p.path, detail, err)
}

// recoverInto turns a panic raised inside the document model into an
// extraction failure.
func (p *Parser) recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = p.fail("unexpected document structure", fmt.Errorf("%v", r))
	}
}

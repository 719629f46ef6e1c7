// Package ir defines the intermediate representation of a word-processing
// document: its top-level content blocks in document order.
package ir

// Document is the ordered body content of a parsed document.
type Document struct {
	Content []Block
}

// BlockType represents the type of content block.
type BlockType string

const (
	BlockTypeParagraph BlockType = "paragraph"
	BlockTypeTable     BlockType = "table"
)

// Block represents a content block in the document.
// Exactly one of Paragraph and Table is set, matching Type.
type Block struct {
	Type      BlockType
	Paragraph *Paragraph
	Table     *TableBlock
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		Content: make([]Block, 0),
	}
}

// AddParagraph adds a paragraph block to the document.
func (d *Document) AddParagraph(p *Paragraph) {
	d.Content = append(d.Content, Block{
		Type:      BlockTypeParagraph,
		Paragraph: p,
	})
}

// AddTable adds a table block to the document.
func (d *Document) AddTable(t *TableBlock) {
	d.Content = append(d.Content, Block{
		Type:  BlockTypeTable,
		Table: t,
	})
}

// Counts returns the number of paragraph and table blocks.
func (d *Document) Counts() (paragraphs, tables int) {
	for _, b := range d.Content {
		switch b.Type {
		case BlockTypeParagraph:
			paragraphs++
		case BlockTypeTable:
			tables++
		}
	}
	return paragraphs, tables
}

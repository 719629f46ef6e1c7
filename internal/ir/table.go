package ir

// TableBlock represents a table in the document.
//
// Rows is always len(Cells). Cols is the column count the table declares,
// which may differ from the length of individual rows when cells are merged.
type TableBlock struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

// Cell represents a single cell in a table. Text holds the cell's
// paragraphs joined by newlines.
type Cell struct {
	Text string
}

// NewTable creates an empty table declaring cols columns.
func NewTable(cols int) *TableBlock {
	return &TableBlock{
		Cols:  cols,
		Cells: make([][]Cell, 0),
	}
}

// AppendRow adds a row holding one cell per text, in order.
func (t *TableBlock) AppendRow(texts ...string) {
	row := make([]Cell, len(texts))
	for i, text := range texts {
		row[i] = Cell{Text: text}
	}
	t.Cells = append(t.Cells, row)
	t.Rows = len(t.Cells)
}

// WidestRow returns the largest number of cells found in any row.
func (t *TableBlock) WidestRow() int {
	widest := 0
	for _, row := range t.Cells {
		if len(row) > widest {
			widest = len(row)
		}
	}
	return widest
}

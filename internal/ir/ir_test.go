package ir

import "testing"

func TestNewDocument(t *testing.T) {
	doc := NewDocument()

	if len(doc.Content) != 0 {
		t.Errorf("expected empty content, got %d blocks", len(doc.Content))
	}
}

func TestDocument_AddParagraph(t *testing.T) {
	doc := NewDocument()
	p := NewParagraph("Hello, World!")

	doc.AddParagraph(p)

	if len(doc.Content) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Content))
	}
	if doc.Content[0].Type != BlockTypeParagraph {
		t.Errorf("expected paragraph type, got %s", doc.Content[0].Type)
	}
	if doc.Content[0].Paragraph.Text != "Hello, World!" {
		t.Errorf("expected 'Hello, World!', got %s", doc.Content[0].Paragraph.Text)
	}
	if doc.Content[0].Table != nil {
		t.Error("expected no table on a paragraph block")
	}
}

func TestDocument_AddTable(t *testing.T) {
	doc := NewDocument()
	table := NewTable(3)
	table.AppendRow("Header 1", "Header 2", "Header 3")
	table.AppendRow("a", "b", "c")

	doc.AddTable(table)

	if len(doc.Content) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Content))
	}
	if doc.Content[0].Type != BlockTypeTable {
		t.Errorf("expected table type, got %s", doc.Content[0].Type)
	}
	if doc.Content[0].Table.Rows != 2 {
		t.Errorf("expected 2 rows, got %d", doc.Content[0].Table.Rows)
	}
	if doc.Content[0].Table.Cells[1][2].Text != "c" {
		t.Errorf("expected 'c', got %q", doc.Content[0].Table.Cells[1][2].Text)
	}
}

func TestDocument_PreservesOrder(t *testing.T) {
	doc := NewDocument()
	doc.AddParagraph(NewParagraph("one"))
	doc.AddTable(NewTable(1))
	doc.AddParagraph(NewParagraph("two"))
	doc.AddTable(NewTable(1))

	want := []BlockType{BlockTypeParagraph, BlockTypeTable, BlockTypeParagraph, BlockTypeTable}
	for i, b := range doc.Content {
		if b.Type != want[i] {
			t.Errorf("block %d: expected %s, got %s", i, want[i], b.Type)
		}
	}

	paragraphs, tables := doc.Counts()
	if paragraphs != 2 || tables != 2 {
		t.Errorf("expected 2 paragraphs and 2 tables, got %d and %d", paragraphs, tables)
	}
}

func TestParagraph_IsBlank(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"  ", true},
		{"\t\n ", true},
		{"Hello", false},
		{"  Hello  ", false},
	}

	for _, tc := range tests {
		if got := NewParagraph(tc.text).IsBlank(); got != tc.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestTable_WidestRow(t *testing.T) {
	table := NewTable(0)
	if table.WidestRow() != 0 {
		t.Errorf("expected 0 for empty table, got %d", table.WidestRow())
	}

	table.AppendRow("a")
	table.AppendRow("a", "b", "c")
	table.AppendRow("a", "b")

	if table.WidestRow() != 3 {
		t.Errorf("expected 3, got %d", table.WidestRow())
	}
	if table.Rows != 3 {
		t.Errorf("expected 3 rows, got %d", table.Rows)
	}
}

package docx

import (
	"strings"

	godocx "github.com/fumiama/go-docx"
)

// paragraphText returns the visible run text of a paragraph. Hyperlink runs
// contribute their text; numbering indentation and drawings contribute
// nothing.
func paragraphText(p *godocx.Paragraph) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	for _, child := range p.Children {
		switch c := child.(type) {
		case *godocx.Run:
			writeRunText(&sb, c)
		case *godocx.Hyperlink:
			writeRunText(&sb, &c.Run)
		}
	}
	return sb.String()
}

func writeRunText(sb *strings.Builder, r *godocx.Run) {
	for _, child := range r.Children {
		switch c := child.(type) {
		case *godocx.Text:
			sb.WriteString(c.Text)
		case *godocx.Tab:
			sb.WriteByte('\t')
		case *godocx.BarterRabbet:
			// page and column breaks carry no text
			if c.Type == "" || c.Type == "textWrapping" {
				sb.WriteByte('\n')
			}
		}
	}
}

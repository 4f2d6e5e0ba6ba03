package portabletext

import (
	"fmt"
	"html/template"
	"strings"
)

// ToHTML renders a rich-text document straight to markup. The node and
// inline switches are exhaustive over the closed variant sets; a new variant
// must be handled here or the panic below surfaces it during tests.
func ToHTML(blocks []Block) template.HTML {
	var b strings.Builder
	for _, node := range Render(blocks) {
		writeNode(&b, node)
	}
	return template.HTML(b.String())
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case Heading:
		fmt.Fprintf(b, "<h%d>%s</h%d>", n.Level, template.HTMLEscapeString(n.Text), n.Level)
	case Paragraph:
		b.WriteString("<p>")
		writeSpans(b, n.Spans)
		b.WriteString("</p>")
	case Blockquote:
		fmt.Fprintf(b, "<blockquote>%s</blockquote>", template.HTMLEscapeString(n.Text))
	case List:
		tag := "ul"
		if n.Ordered {
			tag = "ol"
		}
		fmt.Fprintf(b, "<%s>", tag)
		for _, item := range n.Items {
			b.WriteString("<li>")
			writeSpans(b, item.Spans)
			b.WriteString("</li>")
		}
		fmt.Fprintf(b, "</%s>", tag)
	default:
		panic(fmt.Sprintf("portabletext: unhandled node variant %T", node))
	}
}

func writeSpans(b *strings.Builder, spans []Inline) {
	for _, span := range spans {
		writeInline(b, span)
	}
}

func writeInline(b *strings.Builder, span Inline) {
	switch s := span.(type) {
	case Text:
		b.WriteString(template.HTMLEscapeString(s.Text))
	case Strong:
		b.WriteString("<strong>")
		writeInline(b, s.Inner)
		b.WriteString("</strong>")
	case Em:
		b.WriteString("<em>")
		writeInline(b, s.Inner)
		b.WriteString("</em>")
	case Link:
		if s.External {
			// External targets open in a new tab and must not leak the
			// referrer or a window handle.
			fmt.Fprintf(b, `<a href="%s" target="_blank" rel="noopener noreferrer">`,
				template.HTMLEscapeString(s.Href))
		} else {
			fmt.Fprintf(b, `<a href="%s">`, template.HTMLEscapeString(s.Href))
		}
		writeInline(b, s.Inner)
		b.WriteString("</a>")
	default:
		panic(fmt.Sprintf("portabletext: unhandled inline variant %T", span))
	}
}

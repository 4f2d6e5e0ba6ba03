// Package portabletext renders the rich-text documents authored in the CMS
// into a closed set of render nodes, and extracts plain text for excerpts and
// meta descriptions.
package portabletext

import "strings"

// Span is one inline run of text inside a block, with zero or more mark
// identifiers referring either to a built-in decorator (strong, em) or to an
// entry in the enclosing block's mark-definition table.
type Span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef defines a non-decorator mark, keyed by the identifier spans use.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// Block is one element of a rich-text document. Blocks whose Type is not
// "block" are opaque to this renderer and skipped.
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
}

// Node is the closed variant set of rendered output. Adding a block kind
// means adding a type here and handling it everywhere Node is consumed; there
// is no default fallthrough.
type Node interface {
	node()
}

type Heading struct {
	Level int // 2..4
	Text  string
}

type Paragraph struct {
	Spans []Inline
}

type Blockquote struct {
	Text string
}

type List struct {
	Ordered bool
	Items   []ListItem
}

type ListItem struct {
	Spans []Inline
}

func (Heading) node()    {}
func (Paragraph) node()  {}
func (Blockquote) node() {}
func (List) node()       {}

// Inline is the closed variant set of inline content. Marks wrap from the
// inside out, in the order the span lists them.
type Inline interface {
	inline()
}

type Text struct {
	Text string
}

type Strong struct {
	Inner Inline
}

type Em struct {
	Inner Inline
}

type Link struct {
	Href     string
	External bool
	Inner    Inline
}

func (Text) inline()   {}
func (Strong) inline() {}
func (Em) inline()     {}
func (Link) inline()   {}

// Render transforms an ordered block sequence into render nodes. A nil or
// empty input yields an empty output. Consecutive blocks sharing a list
// marker become a single List node; any non-list block breaks the run, so a
// list resuming after a paragraph produces two separate List nodes.
func Render(blocks []Block) []Node {
	if len(blocks) == 0 {
		return nil
	}

	var nodes []Node
	var run []Block

	flush := func() {
		if len(run) == 0 {
			return
		}
		nodes = append(nodes, renderList(run))
		run = nil
	}

	for _, block := range blocks {
		if block.Type == "block" && isListMarker(block.ListItem) {
			run = append(run, block)
			continue
		}
		flush()
		if node, ok := renderBlock(block); ok {
			nodes = append(nodes, node)
		}
	}
	flush()

	return nodes
}

func isListMarker(marker string) bool {
	return marker == "bullet" || marker == "number" || marker == "numbered"
}

func isOrderedMarker(marker string) bool {
	return marker == "number" || marker == "numbered"
}

// renderBlock maps one non-list text block to a node. Non-text blocks and
// blocks whose resolved text is empty produce nothing.
func renderBlock(block Block) (Node, bool) {
	if block.Type != "block" {
		return nil, false
	}

	text := blockText(block)
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	switch block.Style {
	case "h1", "h2":
		// An h1-styled block is deliberately demoted to a level-2 heading:
		// the page title owns the single h1 of every page.
		return Heading{Level: 2, Text: text}, true
	case "h3":
		return Heading{Level: 3, Text: text}, true
	case "h4":
		return Heading{Level: 4, Text: text}, true
	case "blockquote":
		return Blockquote{Text: text}, true
	default:
		return Paragraph{Spans: renderSpans(block.Children, block.MarkDefs)}, true
	}
}

func renderList(run []Block) List {
	list := List{Ordered: isOrderedMarker(run[0].ListItem)}
	for _, block := range run {
		list.Items = append(list.Items, ListItem{
			Spans: renderSpans(block.Children, block.MarkDefs),
		})
	}
	return list
}

// renderSpans resolves marks for each span, wrapping in the order listed.
// Unresolvable marks are ignored and the span renders unwrapped.
func renderSpans(children []Span, markDefs []MarkDef) []Inline {
	var spans []Inline
	for _, child := range children {
		var element Inline = Text{Text: child.Text}
		for _, mark := range child.Marks {
			switch mark {
			case "strong", "b":
				element = Strong{Inner: element}
			case "em", "i":
				element = Em{Inner: element}
			default:
				if def, ok := findMarkDef(markDefs, mark); ok && def.Href != "" {
					element = Link{
						Href:     def.Href,
						External: strings.HasPrefix(def.Href, "http"),
						Inner:    element,
					}
				}
			}
		}
		spans = append(spans, element)
	}
	return spans
}

func findMarkDef(markDefs []MarkDef, key string) (MarkDef, bool) {
	for _, def := range markDefs {
		if def.Key == key {
			return def, true
		}
	}
	return MarkDef{}, false
}

func blockText(block Block) string {
	var b strings.Builder
	for _, child := range block.Children {
		b.WriteString(child.Text)
	}
	return b.String()
}

// ToPlainText concatenates the span texts of all text blocks, space-joined
// and trimmed. When maxLength > 0 and the result is longer, it is cut hard at
// maxLength characters and "..." is appended. The cut is deliberately not
// word-boundary aware: meta-description consumers need exact lengths, and the
// SEO-facing truncation that does respect word boundaries lives elsewhere.
func ToPlainText(blocks []Block, maxLength int) string {
	if len(blocks) == 0 {
		return ""
	}

	var parts []string
	for _, block := range blocks {
		if block.Type != "block" {
			continue
		}
		for _, child := range block.Children {
			if child.Text != "" {
				parts = append(parts, child.Text)
			}
		}
	}

	full := strings.TrimSpace(strings.Join(parts, " "))
	if maxLength > 0 {
		runes := []rune(full)
		if len(runes) > maxLength {
			return string(runes[:maxLength]) + "..."
		}
	}
	return full
}

// Package markdown flattens Markdown into the plain text the extractor scans.
package markdown

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/activetext-go/internal/buffer"
)

// StandardOptions goldmark 扩展配置 (GFM + definition list + footnote)
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
		extension.DefinitionList,
		extension.Footnote,
	),
}

// Flatten parses markdown and returns its visible text.
//
// Blocks are separated by a blank line, list items and table rows by a single
// newline. Link destinations are dropped; autolinks keep their URL text so the
// URL pass can find them.
func Flatten(markdown string) string {
	source := []byte(markdown)
	node := goldmark.New(StandardOptions...).Parser().Parse(text.NewReader(source))

	w := &walker{buf: buffer.New(len(source)), source: source}
	_ = ast.Walk(node, w.walk)
	return strings.TrimRight(w.buf.String(), "\n")
}

type walker struct {
	buf    *buffer.TextBuffer
	source []byte
}

func (w *walker) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Text:
		if entering {
			w.buf.Write(string(n.Segment.Value(w.source)))
			if n.SoftLineBreak() || n.HardLineBreak() {
				w.buf.Write("\n")
			}
		}

	case *ast.String:
		if entering {
			w.buf.Write(string(n.Value))
		}

	case *ast.AutoLink:
		if entering {
			w.buf.Write(string(n.Label(w.source)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Paragraph, *ast.TextBlock:
		if entering && !firstInItem(node) {
			w.blockStart(separation(node))
		}

	case *ast.Heading, *ast.Blockquote, *east.Table:
		if entering {
			w.blockStart(2)
		}

	case *ast.List:
		if entering {
			w.blockStart(separation(node))
		}

	case *ast.ListItem:
		if entering {
			w.blockStart(1)
			w.buf.Write(bullet(n))
		}

	case *east.TaskCheckBox:
		if entering {
			if n.IsChecked {
				w.buf.Write("[x] ")
			} else {
				w.buf.Write("[ ] ")
			}
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.blockStart(2)
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				w.buf.Write(string(seg.Value(w.source)))
			}
		}
		return ast.WalkSkipChildren, nil

	case *ast.ThematicBreak:
		if entering {
			w.blockStart(2)
			w.buf.Write("---")
		}

	case *ast.HTMLBlock, *ast.RawHTML:
		return ast.WalkSkipChildren, nil

	case *east.TableHeader, *east.TableRow:
		if entering {
			w.blockStart(1)
		}

	case *east.TableCell:
		if entering && n.PreviousSibling() != nil {
			w.buf.Write(" | ")
		}
	}
	return ast.WalkContinue, nil
}

// blockStart makes sure the buffer ends with at least want newlines unless it
// is empty.
func (w *walker) blockStart(want int) {
	if w.buf.ByteOffset() == 0 {
		return
	}
	for i := w.buf.TrailingNewlineCount(); i < want; i++ {
		w.buf.Write("\n")
	}
}

// firstInItem reports whether node opens a list item, right after its bullet.
func firstInItem(node ast.Node) bool {
	_, ok := node.Parent().(*ast.ListItem)
	return ok && node.PreviousSibling() == nil
}

// separation is the newline count before a block: one inside a list item,
// two elsewhere.
func separation(node ast.Node) int {
	if _, ok := node.Parent().(*ast.ListItem); ok {
		return 1
	}
	return 2
}

func bullet(item *ast.ListItem) string {
	list, ok := item.Parent().(*ast.List)
	if !ok || !list.IsOrdered() {
		return "• "
	}
	n := list.Start
	for s := item.PreviousSibling(); s != nil; s = s.PreviousSibling() {
		n++
	}
	return strconv.Itoa(n) + ". "
}

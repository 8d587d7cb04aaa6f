// Package rewrite implements the text-mutating passes (preview substitution
// and URL trimming) and the offset reconciliation between them.
//
// A pass never mutates its input: it takes a text, returns the rewritten text
// with elements whose ranges are valid in it, and reports every length change
// as an Edit in input coordinates.
package rewrite

import (
	"github.com/riverfjs/activetext-go/internal/buffer"
	"github.com/riverfjs/activetext-go/internal/offset"
	"github.com/riverfjs/activetext-go/internal/pattern"
	"github.com/riverfjs/activetext-go/internal/scan"
	"github.com/riverfjs/activetext-go/internal/trim"
	"github.com/riverfjs/activetext-go/internal/types"
)

// Edit records a substitution at input offset At that shortened the text by
// Removed UTF-16 units. Removed is negative when the text grew.
type Edit struct {
	At      int
	Removed int
}

// Pass is the output of one rewriting pass.
type Pass struct {
	Text     string
	Elements []types.Element
	Edits    []Edit
}

// Previews substitutes every surviving match of rule with label, left to
// right. With an empty label the matches are emitted in place and the text is
// left untouched. Matches intersecting a protected range are skipped.
//
// Each label replaces its own match position, not the first occurrence of the
// matched text: a label that contains the matched text, or an identical
// earlier match, must not receive a later substitution.
func Previews(text string, rule *pattern.Rule, label string, searchRange types.Range, filter types.Filter, protected []types.Range) Pass {
	pass := Pass{Text: text}
	buf := buffer.New(len(text))
	cursor := 0
	for m := range scan.Scan(text, rule, searchRange) {
		if m.Range.Length <= rule.MinLength {
			continue
		}
		w := scan.TrimmedSpan(m)
		if w.Text == "" || overlapsAny(w.Range, protected) {
			continue
		}
		if filter != nil && !filter(w.Text) {
			continue
		}
		if label == "" {
			pass.Elements = append(pass.Elements, types.Element{
				Range:   m.Range,
				Matched: types.NewMatchedElement(rule.Type, w.Text),
				Type:    rule.Type,
			})
			continue
		}
		buf.Write(text[cursor:w.Start])
		r := buf.Write(label)
		cursor = w.End
		pass.Elements = append(pass.Elements, types.Element{
			Range:   r,
			Matched: types.PreviewElement{Original: w.Text, Preview: label},
			Type:    rule.Type,
		})
		pass.Edits = append(pass.Edits, Edit{At: w.Range.Location, Removed: w.Range.Length - r.Length})
	}
	if label != "" {
		buf.Write(text[cursor:])
		pass.Text = buf.String()
	}
	return pass
}

// URLs extracts URL elements and trims every URL longer than maxLength UTF-16
// units. maxLength <= 0 disables trimming. Matches intersecting a protected
// range are skipped. Like Previews, a trimmed URL replaces its own match
// position.
func URLs(text string, rule *pattern.Rule, searchRange types.Range, maxLength int, filter types.Filter, protected []types.Range) Pass {
	var pass Pass
	buf := buffer.New(len(text))
	cursor := 0
	for m := range scan.Scan(text, rule, searchRange) {
		if m.Range.Length <= rule.MinLength {
			continue
		}
		w := scan.TrimmedSpan(m)
		if w.Text == "" || overlapsAny(w.Range, protected) {
			continue
		}
		if filter != nil && !filter(w.Text) {
			continue
		}
		buf.Write(text[cursor:w.Start])
		cursor = w.End
		if maxLength <= 0 || offset.UTF16Len(w.Text) <= maxLength {
			r := buf.Write(w.Text)
			pass.Elements = append(pass.Elements, types.Element{
				Range:   r,
				Matched: types.NewMatchedElement(rule.Type, w.Text),
				Type:    rule.Type,
			})
			continue
		}
		trimmed := trim.Middle(w.Text, maxLength)
		r := buf.Write(trimmed)
		pass.Elements = append(pass.Elements, types.Element{
			Range:   r,
			Matched: types.URLElement{Original: w.Text, Trimmed: trimmed},
			Type:    rule.Type,
		})
		pass.Edits = append(pass.Edits, Edit{At: w.Range.Location, Removed: w.Range.Length - r.Length})
	}
	buf.Write(text[cursor:])
	pass.Text = buf.String()
	return pass
}

// Reconcile moves elements computed before a pass into that pass's output
// coordinates. Every element is shifted by the edits located before it,
// computed independently per element.
func Reconcile(elements []types.Element, edits []Edit) []types.Element {
	if len(edits) == 0 || len(elements) == 0 {
		return elements
	}
	out := make([]types.Element, len(elements))
	for i, el := range elements {
		shift := 0
		for _, e := range edits {
			if e.At < el.Range.Location {
				shift += e.Removed
			}
		}
		el.Range = el.Range.Shift(-shift)
		out[i] = el
	}
	return out
}

// Ranges returns the ranges of elements.
func Ranges(elements []types.Element) []types.Range {
	out := make([]types.Range, len(elements))
	for i, el := range elements {
		out[i] = el.Range
	}
	return out
}

func overlapsAny(r types.Range, protected []types.Range) bool {
	for _, p := range protected {
		if r.Overlaps(p) {
			return true
		}
	}
	return false
}

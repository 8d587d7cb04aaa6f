// Package scan runs a rule over a text span and applies the per-type match policy.
package scan

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/activetext-go/internal/offset"
	"github.com/riverfjs/activetext-go/internal/pattern"
	"github.com/riverfjs/activetext-go/internal/types"
)

// Match is one raw match of a rule.
type Match struct {
	// Range is the element span in UTF-16 code units of the scanned text.
	Range types.Range
	// Start and End are the byte offsets of the span.
	Start, End int
	Text       string
}

// Clamp limits r to a text of n UTF-16 units. A negative length means "to the end".
func Clamp(r types.Range, n int) types.Range {
	loc := min(max(r.Location, 0), n)
	length := r.Length
	if length < 0 || loc+length > n {
		length = n - loc
	}
	return types.Range{Location: loc, Length: length}
}

// Scan yields the leftmost-first, non-overlapping matches of rule inside
// searchRange. The bounds of searchRange act as text bounds for anchors.
//
// The sequence is lazy and can be ranged over more than once.
func Scan(text string, rule *pattern.Rule, searchRange types.Range) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if text == "" || rule == nil {
			return
		}
		idx := offset.NewIndex(text)
		r := Clamp(searchRange, idx.Len())
		if r.Length == 0 {
			return
		}
		lo, hi := idx.Byte(r.Location), idx.Byte(r.End())
		span := text[lo:hi]
		for _, loc := range rule.Re.FindAllStringSubmatchIndex(span, -1) {
			g := rule.Group
			if 2*g+1 >= len(loc) || loc[2*g] < 0 {
				g = 0
			}
			start, end := lo+loc[2*g], lo+loc[2*g+1]
			u := idx.At(start)
			m := Match{
				Range: types.Range{Location: u, Length: idx.At(end) - u},
				Start: start,
				End:   end,
				Text:  text[start:end],
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Value returns the emitted value of m under rule's policy and whether m
// survives the minimum length check.
func Value(rule *pattern.Rule, m Match) (string, bool) {
	if m.Range.Length <= rule.MinLength {
		return "", false
	}
	word := m.Text
	if rule.StripSigil {
		_, size := utf8.DecodeRuneInString(word)
		word = word[size:]
		// a second sigil is dropped too, once
		if strings.HasPrefix(word, "@") || strings.HasPrefix(word, "#") {
			word = word[1:]
		}
	}
	return strings.TrimSpace(word), true
}

// Elements is the non-mutating extraction used for mention, hashtag, url and
// custom types. Candidates rejected by filter are discarded.
func Elements(text string, rule *pattern.Rule, searchRange types.Range, filter types.Filter) []types.Element {
	var elements []types.Element
	for m := range Scan(text, rule, searchRange) {
		word, ok := Value(rule, m)
		if !ok {
			continue
		}
		if filter != nil && !filter(word) {
			continue
		}
		elements = append(elements, types.Element{
			Range:   m.Range,
			Matched: types.NewMatchedElement(rule.Type, word),
			Type:    rule.Type,
		})
	}
	return elements
}

// TrimmedSpan narrows m to its text without leading and trailing whitespace.
func TrimmedSpan(m Match) Match {
	word := strings.TrimSpace(m.Text)
	if len(word) == len(m.Text) {
		return m
	}
	lead := strings.Index(m.Text, word)
	return Match{
		Range: types.Range{
			Location: m.Range.Location + offset.UTF16Len(m.Text[:lead]),
			Length:   offset.UTF16Len(word),
		},
		Start: m.Start + lead,
		End:   m.Start + lead + len(word),
		Text:  word,
	}
}

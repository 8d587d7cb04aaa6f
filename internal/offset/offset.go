// Package offset converts between Go byte offsets and UTF-16 code unit offsets.
package offset

import (
	"sort"
	"unicode/utf16"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Invalid UTF-8 bytes decode to U+FFFD and count as one unit each, which is
// also how the regexp package sees them.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += utf16.RuneLen(r)
	}
	return count
}

// Index is a cumulative UTF-16 offset table for one string.
//
// At(i) is the UTF-16 offset of byte i; bytes inside a multi-byte rune share
// the offset of the rune's first byte.
type Index struct {
	units []int
}

// NewIndex builds the offset table for text.
func NewIndex(text string) *Index {
	units := make([]int, len(text)+1)
	cum := 0
	prev := 0
	for i, r := range text {
		for j := prev; j < i; j++ {
			units[j] = units[prev]
		}
		units[i] = cum
		prev = i
		cum += utf16.RuneLen(r)
	}
	for j := prev + 1; j < len(text); j++ {
		units[j] = units[prev]
	}
	units[len(text)] = cum
	return &Index{units: units}
}

// Len returns the total UTF-16 length.
func (x *Index) Len() int { return x.units[len(x.units)-1] }

// At returns the UTF-16 offset of byte offset b.
func (x *Index) At(b int) int {
	if b <= 0 {
		return 0
	}
	if b >= len(x.units) {
		return x.Len()
	}
	return x.units[b]
}

// Byte returns the byte offset of the first rune starting at or after UTF-16
// offset u. Offsets inside a surrogate pair round up to the next rune.
func (x *Index) Byte(u int) int {
	if u <= 0 {
		return 0
	}
	n := len(x.units) - 1
	if u >= x.Len() {
		return n
	}
	return sort.Search(n+1, func(i int) bool { return x.units[i] >= u })
}

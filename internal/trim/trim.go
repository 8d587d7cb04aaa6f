// Package trim shortens display strings without splitting grapheme clusters.
package trim

import (
	"github.com/rivo/uniseg"

	"github.com/riverfjs/activetext-go/internal/offset"
)

// Ellipsis marks the removed middle of a trimmed string.
const Ellipsis = "…"

// Middle shortens s to at most max UTF-16 code units, keeping a head and a
// tail around a single Ellipsis. The head gets two thirds of the budget so
// scheme and domain survive. s is returned unchanged when it already fits.
func Middle(s string, max int) string {
	if offset.UTF16Len(s) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	budget := max - offset.UTF16Len(Ellipsis)
	if budget <= 0 {
		return Head(s, max)
	}
	tailMax := budget / 3
	head := Head(s, budget-tailMax)
	tail := Tail(s[len(head):], budget-offset.UTF16Len(head))
	return head + Ellipsis + tail
}

// Head returns the longest grapheme-aligned prefix of s that fits in max units.
func Head(s string, max int) string {
	used, end := 0, 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		n := offset.UTF16Len(cluster)
		if used+n > max {
			break
		}
		used += n
		end += len(cluster)
	}
	return s[:end]
}

// Tail returns the longest grapheme-aligned suffix of s that fits in max units.
func Tail(s string, max int) string {
	var clusters []string
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		clusters = append(clusters, cluster)
	}
	used, start := 0, len(s)
	for i := len(clusters) - 1; i >= 0; i-- {
		n := offset.UTF16Len(clusters[i])
		if used+n > max {
			break
		}
		used += n
		start -= len(clusters[i])
	}
	return s[start:]
}

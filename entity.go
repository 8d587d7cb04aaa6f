package activetext

import (
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/activetext-go/internal/offset"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Every Range in this package is measured in UTF-16 code units, not Go string
// bytes or runes. Characters outside the BMP take 2 units (a surrogate pair).
func UTF16Len(text string) int {
	return offset.UTF16Len(text)
}

// Chunk is a piece of a final text with its elements re-based to it.
type Chunk struct {
	Text     string
	Elements []Element
}

// Split splits a parse result into chunks of at most maxUTF16Len units.
//
// Splits prefer newline boundaries and never cut through an element unless
// the element alone is longer than a chunk; such an element is clipped into
// both chunks. Leading and trailing newlines of each chunk are dropped.
func Split(res *Result, maxUTF16Len int) []Chunk {
	text := res.Text
	elements := res.Registry.All()
	if maxUTF16Len <= 0 || UTF16Len(text) <= maxUTF16Len {
		return []Chunk{{Text: text, Elements: elements}}
	}

	idx := offset.NewIndex(text)
	splitPoints := newlinePositions(text)

	var bounds [][2]int // [byteStart, byteEnd]
	start := 0
	for start < len(text) {
		budget := idx.At(start) + maxUTF16Len
		if idx.Len() <= budget {
			bounds = append(bounds, [2]int{start, len(text)})
			break
		}

		// last newline that fits
		best := -1
		for _, sp := range splitPoints {
			if sp <= start {
				continue
			}
			if idx.At(sp) > budget {
				break
			}
			best = sp
		}
		if best == -1 {
			best = floorRune(text, idx, budget)
		}
		best = avoidElements(best, start, elements, idx)
		if best <= start {
			// force progress by one rune
			_, size := utf8.DecodeRuneInString(text[start:])
			best = start + size
		}
		bounds = append(bounds, [2]int{start, best})
		start = best
	}

	var chunks []Chunk
	for _, b := range bounds {
		lo, hi := idx.At(b[0]), idx.At(b[1])
		chunkText, chunkElements := sliceElements(text[b[0]:b[1]], elements, lo, hi)
		chunkText, chunkElements = stripNewlinesAdjust(chunkText, chunkElements)
		if chunkText != "" {
			chunks = append(chunks, Chunk{Text: chunkText, Elements: chunkElements})
		}
	}
	return chunks
}

// newlinePositions returns the byte offsets right after each newline.
func newlinePositions(text string) []int {
	var points []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			points = append(points, i+1)
		}
	}
	return points
}

// floorRune returns the last rune boundary whose UTF-16 offset is <= u.
func floorRune(text string, idx *offset.Index, u int) int {
	b := idx.Byte(u)
	if b > 0 && idx.At(b) > u {
		_, size := utf8.DecodeLastRuneInString(text[:b])
		b -= size
	}
	return b
}

// avoidElements moves a split at byte b back to the start of the element it
// would cut, as long as that start lies after the chunk start.
func avoidElements(b, chunkStart int, elements []Element, idx *offset.Index) int {
	u := idx.At(b)
	for _, el := range elements {
		if el.Range.Location < u && u < el.Range.End() {
			if sb := idx.Byte(el.Range.Location); sb > chunkStart {
				return sb
			}
		}
	}
	return b
}

// sliceElements keeps the elements overlapping [lo, hi) clipped and re-based.
func sliceElements(chunkText string, elements []Element, lo, hi int) (string, []Element) {
	var out []Element
	for _, el := range elements {
		start := max(el.Range.Location, lo)
		end := min(el.Range.End(), hi)
		if end <= start {
			continue
		}
		el.Range = Range{Location: start - lo, Length: end - start}
		out = append(out, el)
	}
	return chunkText, out
}

// stripNewlinesAdjust strips leading/trailing newlines and adjusts element ranges.
func stripNewlinesAdjust(text string, elements []Element) (string, []Element) {
	stripped := strings.TrimLeft(text, "\n")
	leading := len(text) - len(stripped)
	stripped = strings.TrimRight(stripped, "\n")
	if len(stripped) == len(text) {
		return text, elements
	}
	if stripped == "" {
		return "", nil
	}

	// newlines are one UTF-16 unit each
	n := UTF16Len(stripped)
	var adjusted []Element
	for _, el := range elements {
		start := max(el.Range.Location-leading, 0)
		end := min(el.Range.End()-leading, n)
		if end <= start {
			continue
		}
		el.Range = Range{Location: start, Length: end - start}
		adjusted = append(adjusted, el)
	}
	return stripped, adjusted
}

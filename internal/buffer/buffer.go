package buffer

import (
	"strings"

	"github.com/riverfjs/activetext-go/internal/offset"
	"github.com/riverfjs/activetext-go/internal/types"
)

// TextBuffer accumulates rewritten text and tracks the current UTF-16 offset.
type TextBuffer struct {
	sb          strings.Builder
	utf16Offset int
}

// New creates a TextBuffer with room for size bytes.
func New(size int) *TextBuffer {
	tb := &TextBuffer{}
	tb.sb.Grow(size)
	return tb
}

// Write appends text and returns the range it occupies in the buffer.
func (tb *TextBuffer) Write(text string) types.Range {
	n := offset.UTF16Len(text)
	r := types.Range{Location: tb.utf16Offset, Length: n}
	tb.sb.WriteString(text)
	tb.utf16Offset += n
	return r
}

// ByteOffset returns the current byte offset.
func (tb *TextBuffer) ByteOffset() int {
	return tb.sb.Len()
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	s := tb.sb.String()
	count := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\n'; i-- {
		count++
	}
	return count
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return tb.sb.String()
}

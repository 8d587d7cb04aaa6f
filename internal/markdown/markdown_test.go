package markdown

import "testing"

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello @bob", "hello @bob"},
		{"emphasis", "**bold** and *italic* and ~~gone~~", "bold and italic and gone"},
		{"heading", "# Title\n\nbody #tag", "Title\n\nbody #tag"},
		{"link keeps label", "see [Google](https://google.com) now", "see Google now"},
		{"autolink keeps url", "go <https://example.com/a>", "go https://example.com/a"},
		{"code span", "run `make @all`", "run make @all"},
		{"soft break", "line one\nline two", "line one\nline two"},
		{"unordered list", "- a\n- b", "• a\n• b"},
		{"ordered list", "3. x\n4. y", "3. x\n4. y"},
		{"task list", "- [x] done\n- [ ] todo", "• [x] done\n• [ ] todo"},
		{"list after paragraph", "intro\n\n- a", "intro\n\n• a"},
		{"code block", "```\nfoo\nbar\n```", "foo\nbar"},
		{"thematic break", "a\n\n---\n\nb", "a\n\n---\n\nb"},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", "a | b\n1 | 2"},
		{"html skipped", "<div>hidden</div>\n\nshown", "shown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.md); got != tt.want {
				t.Errorf("Flatten(%q) = %q, want %q", tt.md, got, tt.want)
			}
		})
	}
}

// TestFlatten_UnicodeSupplementary 测试补充平面字符原样保留
func TestFlatten_UnicodeSupplementary(t *testing.T) {
	md := "**📌 note** for @bob"
	if got, want := Flatten(md), "📌 note for @bob"; got != want {
		t.Errorf("Flatten(%q) = %q, want %q", md, got, want)
	}
}

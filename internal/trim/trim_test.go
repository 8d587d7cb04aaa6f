package trim

import (
	"strings"
	"testing"

	"github.com/riverfjs/activetext-go/internal/offset"
)

func TestMiddle_FitsUnchanged(t *testing.T) {
	if got := Middle("google.com", 31); got != "google.com" {
		t.Errorf("Middle = %q, want unchanged", got)
	}
}

func TestMiddle_RespectsMax(t *testing.T) {
	s := "https://twitter.com/twicket_app/status/649678392372121601"
	for _, max := range []int{1, 2, 3, 10, 31, 40} {
		got := Middle(s, max)
		if n := offset.UTF16Len(got); n > max {
			t.Errorf("Middle(%d) = %q has length %d", max, got, n)
		}
	}
}

func TestMiddle_KeepsHeadAndTail(t *testing.T) {
	s := "https://example.com/very/long/path/name"
	got := Middle(s, 10)
	if got != "https:…ame" {
		t.Errorf("Middle = %q, want https:…ame", got)
	}
	got = Middle(s, 31)
	if !strings.HasPrefix(got, "https://example.com") || !strings.HasSuffix(got, "name") {
		t.Errorf("Middle = %q, want scheme/domain head and name tail", got)
	}
}

func TestMiddle_Zero(t *testing.T) {
	if got := Middle("abc", 0); got != "" {
		t.Errorf("Middle(0) = %q, want empty", got)
	}
}

func TestHead_DoesNotSplitSurrogates(t *testing.T) {
	if got := Head("a📌b", 2); got != "a" {
		t.Errorf("Head = %q, want a", got)
	}
}

func TestTail_DoesNotSplitFlags(t *testing.T) {
	if got := Tail("x🇺🇸", 3); got != "" {
		t.Errorf("Tail = %q, want empty (flag needs 4 units)", got)
	}
	if got := Tail("x🇺🇸", 4); got != "🇺🇸" {
		t.Errorf("Tail = %q, want flag", got)
	}
}

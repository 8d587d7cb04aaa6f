package pattern

import (
	"errors"
	"testing"

	"github.com/riverfjs/activetext-go/internal/types"
)

func group(r *Rule, s string) []string {
	var out []string
	for _, m := range r.Re.FindAllStringSubmatch(s, -1) {
		out = append(out, m[r.Group])
	}
	return out
}

func TestCompile_BuiltinPolicy(t *testing.T) {
	cases := []struct {
		typ   types.ElementType
		min   int
		strip bool
	}{
		{types.Mention(), 2, true},
		{types.Hashtag(), 2, true},
		{types.URL(), 2, false},
		{types.Custom("x"), 0, false},
		{types.Preview("x", "y"), 1, false},
	}
	for _, c := range cases {
		r, err := Compile(c.typ)
		if err != nil {
			t.Fatalf("Compile(%v) error: %v", c.typ, err)
		}
		if r.MinLength != c.min || r.StripSigil != c.strip {
			t.Errorf("Compile(%v) = min %d strip %v, want %d %v", c.typ, r.MinLength, r.StripSigil, c.min, c.strip)
		}
	}
}

func TestCompile_InvalidCustom(t *testing.T) {
	_, err := Compile(types.Custom(`(unclosed`))
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	var pe *Error
	if !errors.As(err, &pe) || pe.Pattern != `(unclosed` {
		t.Errorf("error = %v, want *Error for the pattern", err)
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("errors.Is(err, ErrInvalid) = false")
	}
}

func TestCompile_LookaheadRejected(t *testing.T) {
	if _, err := Compile(types.Preview(`a(?=b)`, "x")); err == nil {
		t.Error("look-ahead is not RE2 syntax and should fail")
	}
}

func TestMentionPattern(t *testing.T) {
	r := MustCompile(types.Mention())
	got := group(r, "@start mid @mid end.@dot mail@example.com")
	want := []string{"@start", "@mid", "@dot"}
	if len(got) != len(want) {
		t.Fatalf("mentions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mention %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHashtagPattern_Unicode(t *testing.T) {
	r := MustCompile(types.Hashtag())
	got := group(r, "#multiple #hashtags #日本 no#tag")
	if len(got) != 3 || got[2] != "#日本" {
		t.Errorf("hashtags = %v", got)
	}
}

func TestURLPattern(t *testing.T) {
	r := MustCompile(types.URL())
	cases := []struct {
		in   string
		want string
	}{
		{"this one: HTTPS://optonaut.co. Now", "HTTPS://optonaut.co"},
		{"Links are also google.com supported", "google.com"},
		{"see www.example.org/page?x=1, ok", "www.example.org/page?x=1"},
		{"(http://a.io/x)", "http://a.io/x"},
		{"pic.twitter.com/abc", "pic.twitter.com/abc"},
		{"youtu.be/abc123", "youtu.be/abc123"},
		{"visit https://example.com/パス/ページ ok", "https://example.com/パス/ページ"},
		{"visit https://例え.jp/パス ok", "https://例え.jp/パス"},
		{"see http://m\u00fcnchen.de/stra\u00dfe.", "http://m\u00fcnchen.de/stra\u00dfe"},
	}
	for _, c := range cases {
		got := group(r, c.in)
		if len(got) != 1 || got[0] != c.want {
			t.Errorf("urls in %q = %v, want [%q]", c.in, got, c.want)
		}
	}
}

func TestURLPattern_NoFalsePositives(t *testing.T) {
	r := MustCompile(types.URL())
	for _, s := range []string{"bob@example.com", "e.g. this", "View Video", "3.14"} {
		if got := group(r, s); len(got) != 0 {
			t.Errorf("urls in %q = %v, want none", s, got)
		}
	}
}

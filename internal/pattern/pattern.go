// Package pattern maps element types to their matching rules.
package pattern

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/riverfjs/activetext-go/internal/types"
)

const (
	// MentionPattern matches @handle preceded by start of text, whitespace or a dot.
	MentionPattern = `(?:^|[\s.])(@[\p{L}\p{N}_]+)`

	// HashtagPattern matches #tag preceded by start of text or whitespace.
	HashtagPattern = `(?:^|\s)(#[\p{L}\p{N}_]+)`

	// urlChars is the body of a URL once its prefix is known. Letters and
	// digits are Unicode classes so non-ASCII hosts and paths stay whole.
	urlChars = `[-\p{L}\p{N}_;/?:@&=+$|.!~*'()\[\]%#,☺]`

	// urlLast is the set a URL may end with.
	urlLast = `[\p{L}\p{N}_/#]`

	// URLPattern matches scheme, www. and pic. prefixed URLs and bare domains
	// ending in a common TLD. The last character must be a letter, a digit, an
	// underscore, a slash or a hash so trailing punctuation is left out.
	URLPattern = `(?i)(?:^|[\s.:;?\-\]<(])(` +
		`(?:https?://|www\.|pic\.)` + urlChars + `+` + urlLast + `(?:\(\))?` +
		`|` +
		`[\p{L}\p{N}-]+(?:\.[\p{L}\p{N}-]+)*\.(?:com|org|net|edu|gov|io|co|me|app|dev|be|ly|gl|tv|ai|info|us|uk)\b(?:/(?:` + urlChars + `*` + urlLast + `)?)?` +
		`)`
)

// Rule is the compiled matcher plus per-type structural policy.
type Rule struct {
	Type types.ElementType
	Re   *regexp.Regexp

	// Group is the capture group reporting the element span, 0 for the whole match.
	Group int

	// MinLength discards matches whose span is not longer than it.
	MinLength int

	// StripSigil drops the leading @ or # from the emitted value.
	StripSigil bool
}

// ErrInvalid is matched by every *Error through errors.Is.
var ErrInvalid = errors.New("invalid pattern")

// Error reports a pattern that does not compile.
type Error struct {
	Type    types.ElementType
	Pattern string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s pattern %q: %v", e.Type.Kind, e.Pattern, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalid.
func (e *Error) Is(target error) bool { return target == ErrInvalid }

var (
	mentionRe = regexp.MustCompile(MentionPattern)
	hashtagRe = regexp.MustCompile(HashtagPattern)
	urlRe     = regexp.MustCompile(URLPattern)
)

// Compile returns the rule for t. Only custom and preview types can fail.
func Compile(t types.ElementType) (*Rule, error) {
	switch t.Kind {
	case types.KindMention:
		return &Rule{Type: t, Re: mentionRe, Group: 1, MinLength: 2, StripSigil: true}, nil
	case types.KindHashtag:
		return &Rule{Type: t, Re: hashtagRe, Group: 1, MinLength: 2, StripSigil: true}, nil
	case types.KindURL:
		return &Rule{Type: t, Re: urlRe, Group: 1, MinLength: 2}, nil
	case types.KindCustom, types.KindPreview:
		re, err := regexp.Compile(t.Pattern)
		if err != nil {
			return nil, &Error{Type: t, Pattern: t.Pattern, Err: err}
		}
		minLength := 0
		if t.Kind == types.KindPreview {
			minLength = 1
		}
		return &Rule{Type: t, Re: re, MinLength: minLength}, nil
	default:
		return nil, &Error{Type: t, Pattern: t.Pattern, Err: fmt.Errorf("unknown kind %d", t.Kind)}
	}
}

// MustCompile is like Compile but panics on error.
func MustCompile(t types.ElementType) *Rule {
	r, err := Compile(t)
	if err != nil {
		panic(err)
	}
	return r
}

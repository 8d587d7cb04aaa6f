package types

import "fmt"

// Kind 标识 active element 的语义类型
type Kind int

const (
	KindMention Kind = iota
	KindHashtag
	KindURL
	KindCustom
	KindPreview
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMention:
		return "mention"
	case KindHashtag:
		return "hashtag"
	case KindURL:
		return "url"
	case KindCustom:
		return "custom"
	case KindPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// ElementType 是 mention / hashtag / url / custom(pattern) / preview(pattern, label) 的 tagged variant
//
// Custom 和 Preview 的身份由 Pattern 决定，PreviewText 不参与比较。
type ElementType struct {
	Kind        Kind
	Pattern     string
	PreviewText string
}

// TypeKey is the comparable identity of an ElementType.
type TypeKey struct {
	Kind    Kind
	Pattern string
}

func Mention() ElementType { return ElementType{Kind: KindMention} }
func Hashtag() ElementType { return ElementType{Kind: KindHashtag} }
func URL() ElementType     { return ElementType{Kind: KindURL} }

// Custom returns a custom type matched by pattern.
func Custom(pattern string) ElementType {
	return ElementType{Kind: KindCustom, Pattern: pattern}
}

// Preview returns a type whose matches are replaced by label in the final text.
func Preview(pattern, label string) ElementType {
	return ElementType{Kind: KindPreview, Pattern: pattern, PreviewText: label}
}

// Key returns the identity used by the element registry.
func (t ElementType) Key() TypeKey {
	switch t.Kind {
	case KindCustom, KindPreview:
		return TypeKey{Kind: t.Kind, Pattern: t.Pattern}
	default:
		return TypeKey{Kind: t.Kind}
	}
}

// Equal reports whether t and o are the same type.
func (t ElementType) Equal(o ElementType) bool { return t.Key() == o.Key() }

func (t ElementType) String() string {
	switch t.Kind {
	case KindCustom:
		return fmt.Sprintf("custom(%s)", t.Pattern)
	case KindPreview:
		return fmt.Sprintf("preview(%s)", t.Pattern)
	default:
		return t.Kind.String()
	}
}

// Range 是 UTF-16 code unit 半开区间 [Location, Location+Length)
type Range struct {
	Location int `json:"location"`
	Length   int `json:"length"`
}

// End returns the exclusive end offset.
func (r Range) End() int { return r.Location + r.Length }

// Contains reports whether offset lies inside r.
func (r Range) Contains(offset int) bool {
	return offset >= r.Location && offset < r.End()
}

// Overlaps reports whether r and o share at least one code unit.
func (r Range) Overlaps(o Range) bool {
	return r.Location < o.End() && o.Location < r.End()
}

// Shift moves r by delta code units.
func (r Range) Shift(delta int) Range {
	return Range{Location: r.Location + delta, Length: r.Length}
}

// MatchedElement carries the decoded payload of an element.
//
// The set of variants is closed; switch on the concrete type:
//
//	switch m := el.Matched.(type) {
//	case MentionElement:
//	case HashtagElement:
//	case URLElement:
//	case CustomElement:
//	case PreviewElement:
//	}
type MatchedElement interface {
	Value() string
	matched()
}

// MentionElement is a handle without its leading @.
type MentionElement struct{ Handle string }

// HashtagElement is a tag without its leading #.
type HashtagElement struct{ Tag string }

// URLElement keeps the matched URL and its display form.
type URLElement struct {
	Original string
	Trimmed  string
}

// CustomElement is the raw text matched by a custom pattern.
type CustomElement struct{ Text string }

// PreviewElement keeps the matched text and the label shown in its place.
type PreviewElement struct {
	Original string
	Preview  string
}

func (m MentionElement) Value() string { return m.Handle }
func (m HashtagElement) Value() string { return m.Tag }
func (m URLElement) Value() string     { return m.Original }
func (m CustomElement) Value() string  { return m.Text }
func (m PreviewElement) Value() string { return m.Original }

func (MentionElement) matched() {}
func (HashtagElement) matched() {}
func (URLElement) matched()     {}
func (CustomElement) matched()  {}
func (PreviewElement) matched() {}

// NewMatchedElement builds the default payload of kind t for text.
func NewMatchedElement(t ElementType, text string) MatchedElement {
	switch t.Kind {
	case KindMention:
		return MentionElement{Handle: text}
	case KindHashtag:
		return HashtagElement{Tag: text}
	case KindURL:
		return URLElement{Original: text, Trimmed: text}
	case KindPreview:
		return PreviewElement{Original: text, Preview: text}
	default:
		return CustomElement{Text: text}
	}
}

// Element 是 (range, matched element, type) 三元组
type Element struct {
	Range   Range
	Matched MatchedElement
	Type    ElementType
}

// Filter decides whether a candidate's text may become an element.
type Filter func(text string) bool

package activetext

import "github.com/riverfjs/activetext-go/internal/types"

// 导出类型别名
type (
	Kind           = types.Kind
	ElementType    = types.ElementType
	TypeKey        = types.TypeKey
	Range          = types.Range
	Element        = types.Element
	MatchedElement = types.MatchedElement
	MentionElement = types.MentionElement
	HashtagElement = types.HashtagElement
	URLElement     = types.URLElement
	CustomElement  = types.CustomElement
	PreviewElement = types.PreviewElement
	Filter         = types.Filter
)

const (
	KindMention = types.KindMention
	KindHashtag = types.KindHashtag
	KindURL     = types.KindURL
	KindCustom  = types.KindCustom
	KindPreview = types.KindPreview
)

// Mention returns the mention type (@handle).
func Mention() ElementType { return types.Mention() }

// Hashtag returns the hashtag type (#tag).
func Hashtag() ElementType { return types.Hashtag() }

// URL returns the URL type.
func URL() ElementType { return types.URL() }

// Custom returns a type matched by a caller-supplied RE2 pattern.
func Custom(pattern string) ElementType { return types.Custom(pattern) }

// Preview returns a type whose matches are shown as label in the final text.
// An empty label keeps the matched text in place.
func Preview(pattern, label string) ElementType { return types.Preview(pattern, label) }

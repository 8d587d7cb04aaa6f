package activetext

import (
	"github.com/riverfjs/activetext-go/internal/offset"
	"github.com/riverfjs/activetext-go/internal/pattern"
	"github.com/riverfjs/activetext-go/internal/rewrite"
	"github.com/riverfjs/activetext-go/internal/scan"
	"github.com/riverfjs/activetext-go/internal/types"
)

// Extractor runs the parse pipeline for a fixed configuration.
//
// An Extractor is immutable after New and safe for concurrent use; every
// Parse call works on its own copies of the text and registry.
type Extractor struct {
	types     []ElementType
	rules     map[TypeKey]*pattern.Rule
	filters   map[TypeKey]Filter
	maxURL    int
	normalize func(string) string
}

// New compiles every enabled type. An invalid custom or preview pattern
// fails here with a *PatternError.
func New(opts ...Option) (*Extractor, error) {
	o := applyOptions(opts...)
	e := &Extractor{
		rules:     make(map[TypeKey]*pattern.Rule, len(o.Types)),
		filters:   make(map[TypeKey]Filter, len(o.Filters)),
		maxURL:    o.URLMaximumLength,
		normalize: o.Normalize,
	}
	for k, fn := range o.Filters {
		e.filters[k] = fn
	}
	for _, t := range o.Types {
		if _, dup := e.rules[t.Key()]; dup {
			Logger.Warn().Str("type", t.String()).Msg("duplicate enabled type ignored")
			continue
		}
		rule, err := pattern.Compile(t)
		if err != nil {
			return nil, err
		}
		e.rules[t.Key()] = rule
		e.types = append(e.types, t)
	}
	return e, nil
}

// Types returns the enabled types in priority order.
func (e *Extractor) Types() []ElementType {
	return append([]ElementType(nil), e.types...)
}

// previewSet is the running state of one preview type across passes.
type previewSet struct {
	typ      ElementType
	elements []Element
}

// Parse runs preview substitution, URL trimming, preview reconciliation and
// the remaining scans, in that order.
func (e *Extractor) Parse(text string) *Result {
	if e.normalize != nil {
		text = e.normalize(text)
	}
	reg := newRegistry(e.types)

	var previews []previewSet
	for _, t := range e.types {
		if t.Kind != types.KindPreview {
			continue
		}
		p := rewrite.Previews(text, e.rules[t.Key()], t.PreviewText, whole(text), e.filters[t.Key()], previewRanges(previews))
		for i := range previews {
			previews[i].elements = rewrite.Reconcile(previews[i].elements, p.Edits)
		}
		previews = append(previews, previewSet{typ: t, elements: p.Elements})
		Logger.Debug().Str("type", t.String()).Int("elements", len(p.Elements)).Msg("preview pass")
		text = p.Text
	}

	if rule, ok := e.rules[URL().Key()]; ok {
		p := rewrite.URLs(text, rule, whole(text), e.maxURL, e.filters[URL().Key()], previewRanges(previews))
		for i := range previews {
			previews[i].elements = rewrite.Reconcile(previews[i].elements, p.Edits)
		}
		reg.set(URL(), p.Elements)
		Logger.Debug().Int("elements", len(p.Elements)).Int("trimmed", len(p.Edits)).Msg("url pass")
		text = p.Text
	}

	for _, ps := range previews {
		reg.set(ps.typ, ps.elements)
	}

	for _, t := range e.types {
		if t.Kind == types.KindPreview || t.Kind == types.KindURL {
			continue
		}
		reg.set(t, scan.Elements(text, e.rules[t.Key()], whole(text), e.filters[t.Key()]))
	}

	return &Result{Text: text, Registry: reg}
}

// ExtractElements scans text for t inside searchRange without rewriting it.
// It is the primitive used for mention, hashtag, url and custom types.
func ExtractElements(t ElementType, text string, searchRange Range, filter Filter) ([]Element, error) {
	rule, err := pattern.Compile(t)
	if err != nil {
		return nil, err
	}
	return scan.Elements(text, rule, searchRange, filter), nil
}

// ExtractURLElements finds URLs inside searchRange and trims those longer than
// maxLength UTF-16 units (maxLength <= 0 disables trimming). It returns the
// elements and the rewritten text.
func ExtractURLElements(text string, searchRange Range, maxLength int) ([]Element, string) {
	p := rewrite.URLs(text, pattern.MustCompile(URL()), searchRange, maxLength, nil, nil)
	return p.Elements, p.Text
}

// ExtractPreviewElements substitutes matches of t inside searchRange with
// label. An empty label emits the matches without touching the text.
func ExtractPreviewElements(t ElementType, text, label string, searchRange Range, filter Filter) ([]Element, string, error) {
	rule, err := pattern.Compile(t)
	if err != nil {
		return nil, "", err
	}
	p := rewrite.Previews(text, rule, label, searchRange, filter, nil)
	return p.Elements, p.Text, nil
}

func whole(text string) Range {
	return Range{Location: 0, Length: offset.UTF16Len(text)}
}

func previewRanges(sets []previewSet) []Range {
	var out []Range
	for _, ps := range sets {
		out = append(out, rewrite.Ranges(ps.elements)...)
	}
	return out
}

package activetext

import (
	"golang.org/x/text/unicode/norm"
)

// Options holds the parse configuration.
type Options struct {
	// Types lists the enabled types; order decides scan priority for ties.
	Types []ElementType
	// URLMaximumLength trims longer URLs; zero or less disables trimming.
	URLMaximumLength int
	Filters          map[TypeKey]Filter
	// Normalize, when set, rewrites the raw text before any pass runs.
	Normalize func(string) string
}

// Option is a function that configures Options.
type Option func(*Options)

// WithTypes replaces the enabled types.
func WithTypes(types ...ElementType) Option {
	return func(opts *Options) {
		opts.Types = append([]ElementType(nil), types...)
	}
}

// WithAdditionalTypes appends to the enabled types.
func WithAdditionalTypes(types ...ElementType) Option {
	return func(opts *Options) {
		opts.Types = append(opts.Types, types...)
	}
}

// WithURLMaximumLength sets the display cap for URLs in UTF-16 code units.
func WithURLMaximumLength(n int) Option {
	return func(opts *Options) {
		opts.URLMaximumLength = n
	}
}

// WithFilter registers the predicate for t. Candidates it rejects are dropped.
func WithFilter(t ElementType, fn Filter) Option {
	return func(opts *Options) {
		if opts.Filters == nil {
			opts.Filters = make(map[TypeKey]Filter)
		}
		if fn == nil {
			delete(opts.Filters, t.Key())
			return
		}
		opts.Filters[t.Key()] = fn
	}
}

// WithMentionFilter registers the mention predicate; it sees the handle without @.
func WithMentionFilter(fn Filter) Option { return WithFilter(Mention(), fn) }

// WithHashtagFilter registers the hashtag predicate; it sees the tag without #.
func WithHashtagFilter(fn Filter) Option { return WithFilter(Hashtag(), fn) }

// WithNormalization applies the Unicode normalization form to the raw text.
func WithNormalization(form norm.Form) Option {
	return func(opts *Options) {
		opts.Normalize = form.String
	}
}

// DefaultOptions returns mention, hashtag and url enabled with no URL cap.
func DefaultOptions() *Options {
	return &Options{
		Types: []ElementType{Mention(), Hashtag(), URL()},
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

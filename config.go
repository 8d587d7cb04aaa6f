package activetext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML configuration schema.
//
//	enabled: [mention, hashtag, url]
//	urlMaxLength: 31
//	normalize: nfc
//	custom:
//	  - pattern: '\bit\b'
//	preview:
//	  - pattern: 'https?://youtu\.be/\w+'
//	    label: View Video
//	filters:
//	  mention:
//	    exclude: [admin]
type FileConfig struct {
	Enabled      []string                `yaml:"enabled" validate:"dive,oneof=mention hashtag url"`
	URLMaxLength int                     `yaml:"urlMaxLength" validate:"min=0"`
	Normalize    string                  `yaml:"normalize" validate:"omitempty,oneof=none nfc nfkc"`
	Custom       []CustomConfig          `yaml:"custom" validate:"dive"`
	Preview      []PreviewConfig         `yaml:"preview" validate:"dive"`
	Filters      map[string]FilterConfig `yaml:"filters" validate:"dive,keys,oneof=mention hashtag url,endkeys"`
}

// CustomConfig configures one custom type.
type CustomConfig struct {
	Pattern string   `yaml:"pattern" validate:"required"`
	Exclude []string `yaml:"exclude"`
}

// PreviewConfig configures one preview type.
type PreviewConfig struct {
	Pattern string   `yaml:"pattern" validate:"required"`
	Label   string   `yaml:"label"`
	Exclude []string `yaml:"exclude"`
}

// FilterConfig drops candidates whose value case-folds to one of Exclude.
type FilterConfig struct {
	Exclude []string `yaml:"exclude"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates YAML config data. Unknown keys are rejected.
func ParseConfig(data []byte) (*FileConfig, error) {
	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Err: err}
	}
	if err := validate.Struct(&fc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, &ConfigError{Field: fe.Namespace(), Err: fmt.Errorf("failed %q validation", fe.Tag())}
		}
		return nil, &ConfigError{Err: err}
	}
	return &fc, nil
}

// Options converts the file config into parse options. Patterns are compiled
// later by New.
func (fc *FileConfig) Options() []Option {
	enabled := DefaultOptions().Types
	if fc.Enabled != nil {
		enabled = nil
	}
	for _, name := range fc.Enabled {
		switch name {
		case "mention":
			enabled = append(enabled, Mention())
		case "hashtag":
			enabled = append(enabled, Hashtag())
		case "url":
			enabled = append(enabled, URL())
		}
	}
	opts := []Option{WithURLMaximumLength(fc.URLMaxLength)}
	for _, c := range fc.Custom {
		t := Custom(c.Pattern)
		enabled = append(enabled, t)
		if len(c.Exclude) > 0 {
			opts = append(opts, WithFilter(t, Exclude(c.Exclude...)))
		}
	}
	for _, p := range fc.Preview {
		t := Preview(p.Pattern, p.Label)
		enabled = append(enabled, t)
		if len(p.Exclude) > 0 {
			opts = append(opts, WithFilter(t, Exclude(p.Exclude...)))
		}
	}
	opts = append([]Option{WithTypes(enabled...)}, opts...)
	for name, f := range fc.Filters {
		if len(f.Exclude) == 0 {
			continue
		}
		switch name {
		case "mention":
			opts = append(opts, WithFilter(Mention(), Exclude(f.Exclude...)))
		case "hashtag":
			opts = append(opts, WithFilter(Hashtag(), Exclude(f.Exclude...)))
		case "url":
			opts = append(opts, WithFilter(URL(), Exclude(f.Exclude...)))
		}
	}
	switch fc.Normalize {
	case "nfc":
		opts = append(opts, WithNormalization(norm.NFC))
	case "nfkc":
		opts = append(opts, WithNormalization(norm.NFKC))
	}
	return opts
}

// Exclude returns a filter rejecting values equal to one of words under
// Unicode case folding.
func Exclude(words ...string) Filter {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[cases.Fold().String(w)] = struct{}{}
	}
	return func(text string) bool {
		_, hit := set[cases.Fold().String(text)]
		return !hit
	}
}

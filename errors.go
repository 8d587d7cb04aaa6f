package activetext

import (
	"fmt"

	"github.com/riverfjs/activetext-go/internal/pattern"
)

// ErrInvalidPattern matches every *PatternError through errors.Is.
var ErrInvalidPattern = pattern.ErrInvalid

// PatternError reports a custom or preview pattern that does not compile.
type PatternError = pattern.Error

// EncodingError reports element text that cannot be turned into a URL.
type EncodingError struct {
	Text string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("activetext: cannot encode %q as URL: %v", e.Text, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("activetext: config: %v", e.Err)
	}
	return fmt.Sprintf("activetext: config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

package activetext

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

// fragmentAllowed is the set of bytes left unescaped by LinkURL.
const fragmentAllowed = "!$&'()*+,-./:;=?@_~"

// LinkURL builds the URL a tapped URL element should open. Text without a
// scheme separator gets an http:// prefix; everything outside the URL
// fragment character set is percent-encoded.
//
// The extractor never calls LinkURL; it serves the layer that handles taps.
func LinkURL(text string) (*url.URL, error) {
	if !utf8.ValidString(text) {
		return nil, &EncodingError{Text: text, Err: errors.New("invalid UTF-8")}
	}
	link := text
	if !strings.Contains(link, "://") {
		link = "http://" + link
	}
	u, err := url.Parse(percentEncode(link))
	if err != nil {
		return nil, &EncodingError{Text: text, Err: err}
	}
	return u, nil
}

func percentEncode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlnum(c) || strings.IndexByte(fragmentAllowed, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

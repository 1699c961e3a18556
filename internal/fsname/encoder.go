// Package fsname converts UTF-8 file names into the filename encoding of the
// platform at the single point a name leaves the program.
//
// Everything upstream of the boundary (parsing, sanitizing, formatting) works on
// UTF-8 strings. An Encoder is resolved once from configuration; the identity
// encoder is used when the target encoding is UTF-8.
package fsname

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnicodeOnly is returned on platforms whose file names are always Unicode.
var ErrUnicodeOnly = errors.New("only utf-8 file names are supported on this platform")

// SystemName selects the encoding reported by the operating system locale.
const SystemName = "system"

// Encoder converts names into a target filename encoding.
type Encoder struct {
	name string
	enc  encoding.Encoding
}

// Lookup resolves an encoding by IANA name ("utf-8", "gbk", "windows-1252",
// "shift_jis", ...) or the special value "system".
func Lookup(name string) (*Encoder, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == SystemName {
		normalized = strings.ToLower(systemEncodingName())
	}
	if isUTF8(normalized) {
		return &Encoder{name: "utf-8"}, nil
	}

	enc, err := ianaindex.IANA.Encoding(normalized)
	if err != nil {
		return nil, fmt.Errorf("filename encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("filename encoding %q: not supported", name)
	}
	if unicodeFileNames {
		return nil, fmt.Errorf("filename encoding %q: %w", name, ErrUnicodeOnly)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = normalized
	}
	return &Encoder{name: canonical, enc: enc}, nil
}

// Identity returns an encoder that leaves names untouched.
func Identity() *Encoder {
	return &Encoder{name: "utf-8"}
}

// Name returns the canonical name of the target encoding.
func (e *Encoder) Name() string {
	if e == nil {
		return "utf-8"
	}
	return e.name
}

// IsIdentity reports whether Encode is a no-op.
func (e *Encoder) IsIdentity() bool {
	return e == nil || e.enc == nil
}

// Encode converts a UTF-8 name into the target encoding. Runes the target cannot
// represent are replaced with the encoding's substitute byte.
func (e *Encoder) Encode(name string) (string, error) {
	if e.IsIdentity() {
		return name, nil
	}
	out, err := encoding.ReplaceUnsupported(e.enc.NewEncoder()).String(name)
	if err != nil {
		return "", fmt.Errorf("encode %q as %s: %w", name, e.name, err)
	}
	return out, nil
}

func isUTF8(name string) bool {
	switch name {
	case "", "utf-8", "utf8":
		return true
	default:
		return false
	}
}

// Package textdecode turns raw bytes and arbitrary values into displayable
// text. It offers three modes: Strict fails on malformed UTF-8, Display never
// fails on bytes and escapes what it cannot decode, and Safe accepts any
// value and always produces text.
package textdecode

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Strict returns v as text, assuming it holds UTF-8. Only string and []byte
// are accepted.
func Strict(v any) (string, error) {
	return StrictWith(UTF8, v)
}

// StrictWith is Strict with an explicit encoding. The first span that does
// not decode is reported as a *DecodeError.
func StrictWith(enc Encoding, v any) (string, error) {
	switch s := v.(type) {
	case string:
		// Valid UTF-8 is already text. Only stray bytes in a string are
		// decoded with enc.
		if utf8.ValidString(s) {
			return s, nil
		}
		return decodeStrict(enc, []byte(s))
	case []byte:
		if enc.IsUTF8() {
			if err := validate(enc, s); err != nil {
				return "", err
			}
			return string(s), nil
		}
		return decodeStrict(enc, s)
	default:
		return "", typeError(v)
	}
}

// Display decodes v with the preferred locale encoding, replacing every
// undecodable byte with a <XX> token. Text input is passed through as-is.
func Display(v any) (string, error) {
	return DisplayWith(PreferredEncoding(), v)
}

// DisplayWith is Display with an explicit encoding. Strings holding valid
// UTF-8 are returned unchanged.
func DisplayWith(enc Encoding, v any) (string, error) {
	switch s := v.(type) {
	case string:
		if utf8.ValidString(s) {
			return s, nil
		}
		return decodeEscaped(enc, []byte(s)), nil
	case []byte:
		return decodeEscaped(enc, s), nil
	default:
		return "", typeError(v)
	}
}

func decodeEscaped(enc Encoding, b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		text, n, ok := enc.nextUnit(b)
		if ok {
			sb.WriteString(text)
		} else {
			sb.WriteString(EscapeBytes(b[:n]))
		}
		b = b[n:]
	}
	return sb.String()
}

// decodeStrict decodes all of b or reports the first bad span.
func decodeStrict(enc Encoding, b []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))
	for off := 0; off < len(b); {
		text, n, ok := enc.nextUnit(b[off:])
		if !ok {
			return "", &DecodeError{Encoding: enc.Name, Offset: off, Bytes: append([]byte(nil), b[off:off+n]...)}
		}
		sb.WriteString(text)
		off += n
	}
	return sb.String(), nil
}

func validate(enc Encoding, b []byte) error {
	if enc.IsUTF8() && utf8.Valid(b) {
		return nil
	}
	_, err := decodeStrict(enc, b)
	return err
}

// EscapeBytes renders each byte as <XX> with uppercase hex digits.
func EscapeBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 4)
	for _, c := range b {
		fmt.Fprintf(&sb, "<%02X>", c)
	}
	return sb.String()
}

// Encode returns the bytes of text values unchanged and the UTF-8 bytes of
// the safe text form of anything else.
func Encode(v any) []byte {
	switch s := v.(type) {
	case []byte:
		return s
	case string:
		return []byte(s)
	}
	return []byte(Safe(v))
}

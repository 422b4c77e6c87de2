package textdecode

import (
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	xunicode "golang.org/x/text/encoding/unicode"
)

// maxUnitLen bounds the byte window tried for one character of a multi-byte
// encoding. No encoding known to x/text needs more than four bytes.
const maxUnitLen = 4

// Encoding pairs a canonical charset name with its decoder.
type Encoding struct {
	Name string
	enc  encoding.Encoding
}

// UTF8 is the encoding assumed when the locale does not name one.
var UTF8 = Encoding{Name: "utf-8", enc: xunicode.UTF8}

// IsUTF8 reports whether e decodes UTF-8.
func (e Encoding) IsUTF8() bool {
	return e.enc == nil || e.enc == xunicode.UTF8
}

// localeEnvVars is the POSIX lookup order for the character type category.
var localeEnvVars = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// PreferredEncoding returns the encoding named by the current locale
// environment, falling back to UTF-8.
func PreferredEncoding() Encoding {
	return preferredEncoding(os.Getenv)
}

func preferredEncoding(getenv func(string) string) Encoding {
	for _, key := range localeEnvVars {
		v := getenv(key)
		if v == "" {
			continue
		}
		// The first non-empty variable decides even without a codeset.
		enc, err := LookupEncoding(localeCodeset(v))
		if err != nil {
			return UTF8
		}
		return enc
	}
	return UTF8
}

// localeCodeset extracts the codeset of a locale name such as
// "ja_JP.eucJP@euro". C and POSIX have no codeset.
func localeCodeset(locale string) string {
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}
	i := strings.IndexByte(locale, '.')
	if i < 0 {
		return ""
	}
	return locale[i+1:]
}

// LookupEncoding resolves a charset label. IANA names are tried first, then
// the WHATWG labels, which cover spellings like "utf8" and "latin1".
func LookupEncoding(name string) (Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return UTF8, nil
	}
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "utf8":
		return UTF8, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return newEncoding(name, enc), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return Encoding{}, err
	}
	return newEncoding(name, enc), nil
}

func newEncoding(label string, enc encoding.Encoding) Encoding {
	if enc == xunicode.UTF8 {
		return UTF8
	}
	name, err := ianaindex.IANA.Name(enc)
	if err != nil || name == "" {
		name = label
	}
	return Encoding{Name: strings.ToLower(name), enc: enc}
}

// nextUnit decodes the character at the start of b. ok is false when the
// leading byte cannot start any valid character.
func (e Encoding) nextUnit(b []byte) (text string, size int, ok bool) {
	if e.IsUTF8() {
		r, n := utf8.DecodeRune(b)
		if r == utf8.RuneError && n <= 1 {
			return "", 1, false
		}
		return string(b[:n]), n, true
	}
	if cm, isCharmap := e.enc.(*charmap.Charmap); isCharmap {
		r := cm.DecodeByte(b[0])
		if r == utf8.RuneError {
			return "", 1, false
		}
		return string(r), 1, true
	}
	limit := min(maxUnitLen, len(b))
	for n := 1; n <= limit; n++ {
		out, err := e.enc.NewDecoder().Bytes(b[:n])
		if err != nil || len(out) == 0 || strings.ContainsRune(string(out), utf8.RuneError) {
			continue
		}
		return string(out), n, true
	}
	return "", 1, false
}

package textdecode

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// maxSafeDepth bounds how many times Safe re-enters itself on its own
// failures before falling back to the value's type name.
const maxSafeDepth = 8

// strategy is one step of the safe conversion chain. A step other than the
// first runs only when the step named by after failed with an error matching
// on.
type strategy struct {
	name  string
	after string
	on    error
	run   func(v any) (string, error)
}

var safeChain = []strategy{
	{name: "text", run: coerceText},
	{name: "utf-8", after: "text", on: ErrDecode, run: utf8Bytes},
	{name: "stringified utf-8", after: "utf-8", on: ErrUnsupportedType, run: stringifiedUTF8},
	{name: "locale", after: "utf-8", on: ErrDecode, run: localeBytes},
}

// Safe returns a text form of any value and never fails. When no strategy
// can convert v, the result describes the last conversion error instead.
func Safe(v any) string {
	return safe(v, 0)
}

func safe(v any, depth int) string {
	if depth > maxSafeDepth {
		return fmt.Sprintf("<%T>", v)
	}
	var (
		failed  string
		lastErr error
	)
	for i, s := range safeChain {
		if i > 0 && (s.after != failed || !errors.Is(lastErr, s.on)) {
			continue
		}
		out, err := attempt(s.run, v)
		if err == nil {
			return out
		}
		failed, lastErr = s.name, err
	}
	return safe(lastErr, depth+1)
}

func attempt(run func(any) (string, error), v any) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", &PanicError{Value: r}
		}
	}()
	return run(v)
}

func coerceText(v any) (string, error) {
	switch s := v.(type) {
	case string:
		if utf8.ValidString(s) {
			return s, nil
		}
		return decodeStrict(UTF8, []byte(s))
	case []byte:
		return asciiText(s)
	default:
		return utf8Text(stringify(v))
	}
}

func utf8Bytes(v any) (string, error) {
	b, err := bytesOf(v)
	if err != nil {
		return "", err
	}
	return decodeStrict(UTF8, b)
}

func stringifiedUTF8(v any) (string, error) {
	return utf8Text(stringify(v))
}

func localeBytes(v any) (string, error) {
	b, err := bytesOf(v)
	if err != nil {
		return "", err
	}
	return decodeStrict(PreferredEncoding(), b)
}

func stringify(v any) string {
	switch s := v.(type) {
	case error:
		return s.Error()
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

func bytesOf(v any) ([]byte, error) {
	switch s := v.(type) {
	case string:
		return []byte(s), nil
	case []byte:
		return s, nil
	default:
		return nil, typeError(v)
	}
}

func utf8Text(s string) (string, error) {
	if utf8.ValidString(s) {
		return s, nil
	}
	return decodeStrict(UTF8, []byte(s))
}

func asciiText(b []byte) (string, error) {
	for i, c := range b {
		if c >= utf8.RuneSelf {
			return "", &DecodeError{Encoding: "ascii", Offset: i, Bytes: []byte{c}}
		}
	}
	return string(b), nil
}

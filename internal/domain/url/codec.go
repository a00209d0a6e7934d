package url

import (
	"strings"
	"unicode/utf8"
)

const (
	unreservedChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.~"
	reservedSafeChars = ";/?:@&=+$,#[]"
	upperHex          = "0123456789ABCDEF"
)

// byteSet is a 256-bit membership table. Values are copied, never shared mutably.
type byteSet [4]uint64

func newByteSet(groups ...string) byteSet {
	var s byteSet
	for _, g := range groups {
		for i := 0; i < len(g); i++ {
			s = s.with(g[i])
		}
	}
	return s
}

func (s byteSet) with(b byte) byteSet {
	s[b>>6] |= 1 << (b & 63)
	return s
}

func (s byteSet) without(chars string) byteSet {
	for i := 0; i < len(chars); i++ {
		b := chars[i]
		s[b>>6] &^= 1 << (b & 63)
	}
	return s
}

func (s byteSet) contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// Read-only after package initialization.
var (
	uriAllowed       = newByteSet(unreservedChars, reservedSafeChars)
	componentAllowed = uriAllowed.without(reservedSafeChars)
	reservedSafe     = newByteSet(reservedSafeChars)
	noSkip           byteSet
)

// EncodeURI percent-encodes s like JavaScript's encodeURI: unreserved and
// reserved-safe characters stay literal, every other UTF-8 byte becomes %XX.
func EncodeURI(s string) string {
	return encode(s, uriAllowed)
}

// EncodeURIComponent percent-encodes s like JavaScript's encodeURIComponent:
// only unreserved characters stay literal.
func EncodeURIComponent(s string) string {
	return encode(s, componentAllowed)
}

// DecodeURI reverses EncodeURI. Escapes that decode to a reserved-safe
// character (; / ? : @ & = + $ , # [ ]) are left as the original triplet so the
// result still splits into the same URI components.
//
// Malformed escapes are copied through literally; DecodeURI never fails.
func DecodeURI(s string) string {
	return decode(s, reservedSafe)
}

// DecodeURIComponent decodes every well-formed %XX escape in s.
// Malformed escapes are copied through literally; DecodeURIComponent never fails.
func DecodeURIComponent(s string) string {
	return decode(s, noSkip)
}

// DecodeURIComponentStrict is DecodeURIComponent that rejects malformed escapes
// and results that are not valid UTF-8 with ErrInvalidPercentEncoding.
func DecodeURIComponentStrict(s string) (string, error) {
	return decodeStrict(s, false)
}

func encode(s string, allowed byteSet) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if allowed.contains(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func decode(s string, skip byteSet) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				v := hi<<4 | lo
				if skip.contains(v) {
					b.WriteString(s[i : i+3])
				} else {
					b.WriteByte(v)
				}
				i += 3
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

// decodeStrict decodes every escape, failing on malformed ones and on results
// that are not valid UTF-8.
func decodeStrict(s string, form bool) (string, error) {
	out, err := decodeEscapes(s, form)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(out) {
		return "", ErrInvalidPercentEncoding
	}
	return out, nil
}

// decodeEscapes decodes every escape, failing on malformed ones. When form is
// set, '+' decodes to a space as in application/x-www-form-urlencoded data.
// The result may hold invalid UTF-8.
func decodeEscapes(s string, form bool) (string, error) {
	if strings.IndexByte(s, '%') < 0 && (!form || strings.IndexByte(s, '+') < 0) {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == '%':
			if i+2 >= len(s) {
				return "", ErrInvalidPercentEncoding
			}
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if !okHi || !okLo {
				return "", ErrInvalidPercentEncoding
			}
			b.WriteByte(hi<<4 | lo)
			i += 3
		case c == '+' && form:
			b.WriteByte(' ')
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

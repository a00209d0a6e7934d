package url

import (
	"fmt"
	"net"
	neturl "net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// PortUnspecified is returned by Port when the URL has no explicit port.
const PortUnspecified = -1

const illegalASCII = "\"<>\\^`{|}"

var (
	// toASCII enforces IDNA lookup mapping, bidi rules and the 63-octet label limit.
	toASCII = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.VerifyDNSLength(true),
	)
	toUnicode = idna.Punycode
)

// Validated is an immutable, validated absolute URL. Identity is the trimmed
// input text: two values are equal iff Value() is equal, and because every other
// field is derived deterministically from it, == on the struct agrees with Equal.
//
// All structural accessors read the ASCII-normalized record built during
// construction; the host is stored in Punycode form.
type Validated struct {
	kind        Kind
	original    string
	scheme      string
	userInfo    string
	host        string
	ipLiteral   bool
	port        int
	path        string
	query       string
	hasQuery    bool
	fragment    string
	hasFragment bool
}

// New validates raw against the scheme policy of kind.
// Every failure is a *ValidationError wrapping one of the package sentinels.
func New(kind Kind, raw string) (Validated, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Validated{}, invalid(raw, ErrBlankInput, nil)
	}

	if err := checkSyntax(trimmed); err != nil {
		return Validated{}, invalid(trimmed, ErrMalformedSyntax, err)
	}

	parsed, err := neturl.Parse(trimmed)
	if err != nil {
		return Validated{}, invalid(trimmed, ErrMalformedSyntax, err)
	}

	hostname := parsed.Hostname()
	if hostname == "" {
		return Validated{}, invalid(trimmed, ErrMissingHost, nil)
	}

	if err = kind.checkScheme(parsed.Scheme); err != nil {
		return Validated{}, invalid(trimmed, ErrUnsupportedScheme, err)
	}

	v := Validated{
		kind:     kind,
		original: trimmed,
		scheme:   strings.ToLower(parsed.Scheme),
		port:     PortUnspecified,
	}

	if ip := net.ParseIP(hostname); ip != nil {
		v.host = strings.ToLower(hostname)
		v.ipLiteral = true
	} else {
		v.host, err = toASCII.ToASCII(hostname)
		if err != nil {
			return Validated{}, invalid(trimmed, ErrMalformedSyntax, err)
		}
	}

	if p := parsed.Port(); p != "" {
		v.port, err = strconv.Atoi(p)
		if err != nil || v.port > 65535 {
			return Validated{}, invalid(trimmed, ErrMalformedSyntax, fmt.Errorf("invalid port %q", p))
		}
	}

	v.splitRaw(trimmed, len(parsed.Scheme))

	return v, nil
}

// NewFromPtr is New for callers holding an optional string. A nil raw fails
// with ErrNullInput.
func NewFromPtr(kind Kind, raw *string) (Validated, error) {
	if raw == nil {
		return Validated{}, invalid("", ErrNullInput, nil)
	}
	return New(kind, *raw)
}

// splitRaw extracts user-info, path, query and fragment from the validated text
// without any unescaping, so accessors return exactly what the caller wrote.
func (v *Validated) splitRaw(s string, schemeLen int) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		v.fragment, v.hasFragment = s[i+1:], true
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		v.query, v.hasQuery = s[i+1:], true
		s = s[:i]
	}

	// A non-empty host implies the "scheme://" prefix.
	rest := s[schemeLen+len("://"):]
	authority := rest
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		authority, v.path = rest[:i], rest[i:]
	}
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		v.userInfo = authority[:i]
	}
}

// checkSyntax rejects text that generic URI grammar does not allow but
// net/url tolerates: whitespace, control and other illegal characters,
// malformed escapes, a second '#', a second '@' in the authority and square
// brackets anywhere but around an IP literal host.
func checkSyntax(s string) error {
	fragments := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			return fmt.Errorf("invalid UTF-8 at index %d", i)
		case r < utf8.RuneSelf && (r <= ' ' || r == 0x7f || strings.ContainsRune(illegalASCII, r)):
			return fmt.Errorf("illegal character %q at index %d", r, i)
		case r >= utf8.RuneSelf && (unicode.IsSpace(r) || unicode.IsControl(r)):
			return fmt.Errorf("illegal character %q at index %d", r, i)
		case r == '%':
			if i+2 >= len(s) {
				return fmt.Errorf("truncated escape at index %d", i)
			}
			if _, ok := unhex(s[i+1]); !ok {
				return fmt.Errorf("malformed escape at index %d", i)
			}
			if _, ok := unhex(s[i+2]); !ok {
				return fmt.Errorf("malformed escape at index %d", i)
			}
		case r == '#':
			fragments++
			if fragments > 1 {
				return fmt.Errorf("illegal character '#' in fragment at index %d", i)
			}
		}
		i += size
	}
	return checkAuthority(s)
}

// checkAuthority enforces the '@' and '[' ']' rules of checkSyntax.
func checkAuthority(s string) error {
	start, end := 0, 0
	if i := strings.Index(s, "://"); i >= 0 && !strings.ContainsAny(s[:i], "/?#") {
		start = i + len("://")
		end = len(s)
		if j := strings.IndexAny(s[start:], "/?#"); j >= 0 {
			end = start + j
		}
	}

	hostStart := start
	if end > start {
		authority := s[start:end]
		if at := strings.IndexByte(authority, '@'); at >= 0 {
			if next := strings.IndexByte(authority[at+1:], '@'); next >= 0 {
				return fmt.Errorf("illegal character '@' in authority at index %d", start+at+1+next)
			}
			hostStart = start + at + 1
		}
	}

	open, closing := -1, -1
	if hostStart < end && s[hostStart] == '[' {
		open = hostStart
		if j := strings.IndexByte(s[hostStart:end], ']'); j >= 0 {
			closing = hostStart + j
		}
		if closing < 0 || (closing+1 < end && s[closing+1] != ':') {
			return fmt.Errorf("malformed IP literal at index %d", hostStart)
		}
	}

	for i := 0; i < len(s); i++ {
		if (s[i] == '[' || s[i] == ']') && i != open && i != closing {
			return fmt.Errorf("illegal character %q at index %d", rune(s[i]), i)
		}
	}
	return nil
}

// Kind returns the scheme policy the URL was validated against.
func (v Validated) Kind() Kind { return v.kind }

// Value returns the trimmed input text. It is the identity of the URL.
func (v Validated) Value() string { return v.original }

// String returns Value.
func (v Validated) String() string { return v.original }

// IsZero reports whether v is the zero value rather than a constructed URL.
func (v Validated) IsZero() bool { return v.original == "" }

// Equal reports whether both URLs were built from the same text.
func (v Validated) Equal(other Validated) bool { return v.original == other.original }

// Scheme returns the lower-case scheme.
func (v Validated) Scheme() string { return v.scheme }

// UserInfo returns the raw user-info component, or "" if there is none.
func (v Validated) UserInfo() string { return v.userInfo }

// Host returns the host in Unicode form; Punycode labels are decoded
// ("xn--0zwm56d" becomes "测试"). IPv6 literals come back without brackets
// ("::1" for "http://[::1]/"); ASCII keeps them.
func (v Validated) Host() string {
	if v.ipLiteral {
		return v.host
	}
	host, err := toUnicode.ToUnicode(v.host)
	if err != nil {
		return v.host
	}
	return host
}

// ASCIIHost returns the host in ASCII (Punycode) form.
func (v Validated) ASCIIHost() string { return v.host }

// Port returns the explicit port, or PortUnspecified.
func (v Validated) Port() int { return v.port }

// Path returns the raw path, or "" if there is none.
func (v Validated) Path() string { return v.path }

// Query returns the raw query without the leading '?'. The boolean is false
// when the URL has no query at all.
func (v Validated) Query() (string, bool) { return v.query, v.hasQuery }

// Fragment returns the raw fragment without the leading '#'. The boolean is
// false when the URL has no fragment at all.
func (v Validated) Fragment() (string, bool) { return v.fragment, v.hasFragment }

// ASCII reassembles the normalized record: lower-case scheme, Punycode host and
// the raw remaining components. Parsing the result again yields the same record.
func (v Validated) ASCII() string {
	var b strings.Builder
	b.WriteString(v.scheme)
	b.WriteString("://")
	if v.userInfo != "" {
		b.WriteString(v.userInfo)
		b.WriteByte('@')
	}
	if v.ipLiteral && strings.Contains(v.host, ":") {
		b.WriteByte('[')
		b.WriteString(v.host)
		b.WriteByte(']')
	} else {
		b.WriteString(v.host)
	}
	if v.port != PortUnspecified {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(v.port))
	}
	b.WriteString(v.path)
	if v.hasQuery {
		b.WriteByte('?')
		b.WriteString(v.query)
	}
	if v.hasFragment {
		b.WriteByte('#')
		b.WriteString(v.fragment)
	}
	return b.String()
}

// EncodeURI returns EncodeURI(v.Value()).
func (v Validated) EncodeURI() string { return EncodeURI(v.original) }

// EncodeURIComponent returns EncodeURIComponent(v.Value()).
func (v Validated) EncodeURIComponent() string { return EncodeURIComponent(v.original) }

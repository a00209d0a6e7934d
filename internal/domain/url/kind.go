package url

import (
	"fmt"
	"strings"
)

// Kind selects the scheme policy a URL is validated against.
type Kind int

const (
	// KindHTTP accepts http and https.
	KindHTTP Kind = iota + 1
	// KindWebSocket accepts ws and wss.
	KindWebSocket
)

var (
	httpSchemes      = []string{"http", "https"}
	webSocketSchemes = []string{"ws", "wss"}
)

// ParseKind maps the external kind names "http" and "ws" (case-insensitive)
// to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "http":
		return KindHTTP, nil
	case "ws":
		return KindWebSocket, nil
	}
	return 0, fmt.Errorf("%w: unknown url kind %q", ErrInvalidArgument, s)
}

// String returns the external name of the kind.
func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindWebSocket:
		return "ws"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Schemes returns the lower-case schemes accepted by the kind.
func (k Kind) Schemes() []string {
	switch k {
	case KindHTTP:
		return append([]string(nil), httpSchemes...)
	case KindWebSocket:
		return append([]string(nil), webSocketSchemes...)
	}
	return nil
}

// Allows reports whether scheme is accepted by the kind. Comparison is case-insensitive.
func (k Kind) Allows(scheme string) bool {
	var allowed []string
	switch k {
	case KindHTTP:
		allowed = httpSchemes
	case KindWebSocket:
		allowed = webSocketSchemes
	}
	for _, s := range allowed {
		if strings.EqualFold(s, scheme) {
			return true
		}
	}
	return false
}

func (k Kind) typeName() string {
	switch k {
	case KindHTTP:
		return "HTTP URL"
	case KindWebSocket:
		return "WebSocket URL"
	}
	return "URL"
}

func (k Kind) checkScheme(scheme string) error {
	if k.Allows(scheme) {
		return nil
	}
	return fmt.Errorf("scheme %q is not allowed for %s, only %s are allowed",
		scheme, k.typeName(), quoteJoin(k.Schemes()))
}

func quoteJoin(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, " and ")
}

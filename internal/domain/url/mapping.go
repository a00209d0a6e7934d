package url

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// HTTP is a Validated URL whose scheme is http or https.
type HTTP struct {
	Validated
}

// NewHTTP validates raw as an http or https URL.
func NewHTTP(raw string) (HTTP, error) {
	v, err := New(KindHTTP, raw)
	if err != nil {
		return HTTP{}, err
	}
	return HTTP{Validated: v}, nil
}

// MarshalText emits Value.
func (u HTTP) MarshalText() ([]byte, error) { return []byte(u.original), nil }

// UnmarshalText validates text as an HTTP URL.
func (u *HTTP) UnmarshalText(text []byte) error {
	return u.Validated.unmarshalText(KindHTTP, text)
}

// UnmarshalJSON rejects null with ErrNullInput; use *HTTP for optional fields.
func (u *HTTP) UnmarshalJSON(data []byte) error {
	return u.Validated.unmarshalJSON(KindHTTP, data)
}

// Scan implements sql.Scanner. NULL fails with ErrNullInput.
func (u *HTTP) Scan(src any) error {
	return u.Validated.scan(KindHTTP, src)
}

// WebSocket is a Validated URL whose scheme is ws or wss.
type WebSocket struct {
	Validated
}

// NewWebSocket validates raw as a ws or wss URL.
func NewWebSocket(raw string) (WebSocket, error) {
	v, err := New(KindWebSocket, raw)
	if err != nil {
		return WebSocket{}, err
	}
	return WebSocket{Validated: v}, nil
}

// MarshalText emits Value.
func (u WebSocket) MarshalText() ([]byte, error) { return []byte(u.original), nil }

// UnmarshalText validates text as a WebSocket URL.
func (u *WebSocket) UnmarshalText(text []byte) error {
	return u.Validated.unmarshalText(KindWebSocket, text)
}

// UnmarshalJSON rejects null with ErrNullInput; use *WebSocket for optional fields.
func (u *WebSocket) UnmarshalJSON(data []byte) error {
	return u.Validated.unmarshalJSON(KindWebSocket, data)
}

// Scan implements sql.Scanner. NULL fails with ErrNullInput.
func (u *WebSocket) Scan(src any) error {
	return u.Validated.scan(KindWebSocket, src)
}

func (v *Validated) unmarshalText(kind Kind, text []byte) error {
	parsed, err := New(kind, string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v *Validated) unmarshalJSON(kind Kind, data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return invalid("", ErrNullInput, nil)
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s must be a JSON string: %w", kind.typeName(), err)
	}
	return v.unmarshalText(kind, []byte(s))
}

func (v *Validated) scan(kind Kind, src any) error {
	switch s := src.(type) {
	case nil:
		return invalid("", ErrNullInput, nil)
	case string:
		return v.unmarshalText(kind, []byte(s))
	case []byte:
		return v.unmarshalText(kind, s)
	}
	return fmt.Errorf("cannot scan %T into %s", src, kind.typeName())
}

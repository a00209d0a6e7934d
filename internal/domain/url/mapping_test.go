package url

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type endpointDoc struct {
	API      HTTP       `json:"api" yaml:"api"`
	Events   WebSocket  `json:"events" yaml:"events"`
	Fallback *HTTP      `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	Mirror   *WebSocket `json:"mirror" yaml:"mirror"`
}

func TestJSONMapping(t *testing.T) {
	var doc endpointDoc
	err := json.Unmarshal([]byte(`{
		"api": " https://api.example.com/v1 ",
		"events": "wss://events.example.com/stream",
		"mirror": null
	}`), &doc)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1", doc.API.Value())
	assert.Equal(t, "/v1", doc.API.Path())
	assert.Equal(t, "wss", doc.Events.Scheme())
	assert.Nil(t, doc.Fallback)
	assert.Nil(t, doc.Mirror)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"api":"https://api.example.com/v1","events":"wss://events.example.com/stream","mirror":null}`,
		string(out),
	)
}

func TestJSONMappingErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "Wrong scheme for field",
			body:    `{"api":"wss://example.com","events":"wss://example.com"}`,
			wantErr: ErrUnsupportedScheme,
		},
		{
			name:    "Null for required value",
			body:    `{"api":null,"events":"wss://example.com"}`,
			wantErr: ErrNullInput,
		},
		{
			name:    "Blank",
			body:    `{"api":"https://example.com","events":"  "}`,
			wantErr: ErrBlankInput,
		},
		{
			name:    "Missing host",
			body:    `{"api":"https:///x","events":"wss://example.com"}`,
			wantErr: ErrMissingHost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var doc endpointDoc
			err := json.Unmarshal([]byte(tt.body), &doc)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	var doc endpointDoc
	require.Error(t, json.Unmarshal([]byte(`{"api":42}`), &doc))
}

func TestYAMLMapping(t *testing.T) {
	var doc endpointDoc
	err := yaml.Unmarshal([]byte("api: https://例子.测试/v1\nevents: ws://localhost:8080/ws\n"), &doc)
	require.NoError(t, err)

	assert.Equal(t, "例子.测试", doc.API.Host())
	assert.Equal(t, 8080, doc.Events.Port())

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var again endpointDoc
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, doc.API, again.API)
	assert.Equal(t, doc.Events, again.Events)

	err = yaml.Unmarshal([]byte("api: ftp://example.com\nevents: ws://localhost\n"), &doc)
	require.Error(t, err)
}

func TestScan(t *testing.T) {
	var u HTTP
	require.NoError(t, u.Scan("https://example.com/a"))
	assert.Equal(t, "/a", u.Path())

	require.NoError(t, u.Scan([]byte("http://example.org")))
	assert.Equal(t, "example.org", u.Host())

	require.ErrorIs(t, u.Scan(nil), ErrNullInput)
	require.ErrorIs(t, u.Scan("ws://example.com"), ErrUnsupportedScheme)
	require.Error(t, u.Scan(42))

	var ws WebSocket
	require.NoError(t, ws.Scan("wss://example.com"))
	assert.Equal(t, KindWebSocket, ws.Kind())
}

func TestFailedUnmarshalKeepsPreviousValue(t *testing.T) {
	u, err := NewHTTP("https://example.com")
	require.NoError(t, err)

	require.Error(t, u.UnmarshalText([]byte("ftp://example.com")))
	assert.Equal(t, "https://example.com", u.Value())
}

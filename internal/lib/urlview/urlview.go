// Package urlview renders validated URLs for API responses and CLI output.
package urlview

import (
	"time"

	"url-toolkit/internal/domain/endpoint"
	domain "url-toolkit/internal/domain/url"
)

type View struct {
	Value               string  `json:"value" yaml:"value"`
	Kind                string  `json:"kind" yaml:"kind"`
	Scheme              string  `json:"scheme" yaml:"scheme"`
	UserInfo            string  `json:"user_info,omitempty" yaml:"user_info,omitempty"`
	Host                string  `json:"host" yaml:"host"`
	ASCIIHost           string  `json:"ascii_host" yaml:"ascii_host"`
	Port                *int    `json:"port,omitempty" yaml:"port,omitempty"`
	Path                string  `json:"path" yaml:"path"`
	Query               *string `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment            *string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	ASCII               string  `json:"ascii" yaml:"ascii"`
	EncodedURI          string  `json:"encoded_uri" yaml:"encoded_uri"`
	EncodedURIComponent string  `json:"encoded_uri_component" yaml:"encoded_uri_component"`

	Params map[string][]string `json:"params,omitempty" yaml:"params,omitempty"`
}

type Endpoint struct {
	Alias     string    `json:"alias" yaml:"alias"`
	Kind      string    `json:"kind" yaml:"kind"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	URL       View      `json:"url" yaml:"url"`
}

// New builds the view of u. Absent query, fragment and port are left nil so
// they are omitted rather than rendered as empty values.
func New(u domain.Validated) View {
	v := View{
		Value:               u.Value(),
		Kind:                u.Kind().String(),
		Scheme:              u.Scheme(),
		UserInfo:            u.UserInfo(),
		Host:                u.Host(),
		ASCIIHost:           u.ASCIIHost(),
		Path:                u.Path(),
		ASCII:               u.ASCII(),
		EncodedURI:          u.EncodeURI(),
		EncodedURIComponent: u.EncodeURIComponent(),
	}

	if p := u.Port(); p != domain.PortUnspecified {
		v.Port = &p
	}
	if q, ok := u.Query(); ok {
		v.Query = &q
	}
	if f, ok := u.Fragment(); ok {
		v.Fragment = &f
	}

	return v
}

// WithParams decodes the named query parameters of u into the view.
func WithParams(u domain.Validated, names []string) (View, error) {
	v := New(u)
	if len(names) == 0 {
		return v, nil
	}

	v.Params = make(map[string][]string, len(names))
	for _, name := range names {
		values, err := u.QueryParams(name)
		if err != nil {
			return View{}, err
		}
		v.Params[name] = values
	}

	return v, nil
}

func FromEndpoint(e endpoint.Endpoint) Endpoint {
	return Endpoint{
		Alias:     e.Alias,
		Kind:      e.Kind.String(),
		CreatedAt: e.CreatedAt,
		URL:       New(e.URL),
	}
}

func FromEndpoints(list []endpoint.Endpoint) []Endpoint {
	res := make([]Endpoint, 0, len(list))
	for _, e := range list {
		res = append(res, FromEndpoint(e))
	}
	return res
}

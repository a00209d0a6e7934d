package url

import "strings"

// QueryParams returns the decoded values of every query parameter named key,
// in query-string order. Names match case-sensitively after decoding.
//
// Segments are split at the first '='; a segment without '=' is a name with an
// empty value. Names and values are percent-decoded as UTF-8 form data ('+' is a
// space); byte sequences that are not valid UTF-8 become U+FFFD. A segment with
// a malformed escape is skipped rather than reported.
//
// The result is never nil. An empty key fails with ErrInvalidArgument.
//
//	u, _ := url.NewHTTP("https://ex.com/?name=%E5%BC%A0%E4%B8%89&name=李四")
//	u.QueryParams("name") // ["张三", "李四"]
func (v Validated) QueryParams(key string) ([]string, error) {
	if key == "" {
		return nil, invalid(v.original, ErrInvalidArgument, errEmptyKey)
	}

	values := []string{}
	if v.query == "" {
		return values, nil
	}

	for _, pair := range strings.Split(v.query, "&") {
		if pair == "" {
			continue
		}

		namePart, valuePart, _ := strings.Cut(pair, "=")

		name, err := decodeFormComponent(namePart)
		if err != nil || name != key {
			continue
		}

		value, err := decodeFormComponent(valuePart)
		if err != nil {
			continue
		}

		values = append(values, value)
	}

	return values, nil
}

// QueryParam returns the first value of key and whether one was present.
func (v Validated) QueryParam(key string) (string, bool) {
	values, err := v.QueryParams(key)
	if err != nil || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func decodeFormComponent(s string) (string, error) {
	out, err := decodeEscapes(s, true)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(out, "\uFFFD"), nil
}

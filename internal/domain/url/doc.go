// Package url provides immutable, validated URL values with IDN host
// normalization, query parameter extraction and JavaScript-compatible
// percent-encoding.
//
// # Construction
//
// A URL is validated once, against a scheme policy selected by Kind:
//
//	u, err := url.NewHTTP("https://例子.测试/search?q=go")
//	if err != nil {
//		return fmt.Errorf("invalid endpoint: %w", err)
//	}
//	u.Host()      // "例子.测试"
//	u.ASCIIHost() // "xn--fsqu00a.xn--0zwm56d"
//
// Construction fails with a *ValidationError wrapping one of ErrNullInput,
// ErrBlankInput, ErrMalformedSyntax, ErrMissingHost or ErrUnsupportedScheme,
// checked in that order. Use errors.Is to branch on the reason.
//
// # Identity
//
// A URL is identified by its trimmed input text (Value). Normalization never
// changes identity: "https://EXAMPLE.com" and "https://example.com" have the
// same Host but are different values.
//
// # Encoding
//
// EncodeURI, EncodeURIComponent, DecodeURI and DecodeURIComponent mirror the
// JavaScript functions of the same names, byte for byte over UTF-8, except that
// the marks !'()* are escaped as well. The decoders are permissive: a '%' that does not start a valid escape is copied
// through unchanged. DecodeURIComponentStrict reports such input as
// ErrInvalidPercentEncoding instead.
//
// # Mapping
//
// HTTP and WebSocket implement encoding.TextMarshaler, encoding.TextUnmarshaler,
// json.Unmarshaler and sql.Scanner. Decoding always runs the validating
// constructor. Store Value() when writing to a database.
package url

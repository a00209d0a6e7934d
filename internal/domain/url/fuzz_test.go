package url

import (
	"errors"
	"strings"
	"testing"
)

// FuzzNew checks that construction never panics, that every failure carries a
// sentinel, and that accepted input is identified by its trimmed text.
func FuzzNew(f *testing.F) {
	f.Add("https://example.com")
	f.Add("  http://user:pw@Example.COM:8080/a/b?x=1&x=2#frag ")
	f.Add("https://例子.测试/路径?name=张三")
	f.Add("https://xn--fsq.xn--0zwm56d")
	f.Add("http://[::1]:80/")
	f.Add("https:///path")
	f.Add("ftp://example.com")
	f.Add("https://example.com/100%zz")
	f.Add(string([]byte{0xff, 0xfe}))
	f.Add("")

	sentinels := []error{ErrBlankInput, ErrMalformedSyntax, ErrMissingHost, ErrUnsupportedScheme}

	f.Fuzz(func(t *testing.T, input string) {
		u, err := New(KindHTTP, input)
		if err != nil {
			matched := false
			for _, s := range sentinels {
				if errors.Is(err, s) {
					matched = true
					break
				}
			}
			if !matched {
				t.Fatalf("error without sentinel: %v", err)
			}
			return
		}

		if u.Value() != strings.TrimSpace(input) {
			t.Fatalf("Value() = %q, want trimmed input", u.Value())
		}
		if u.ASCIIHost() == "" {
			t.Fatal("accepted URL without host")
		}

		again, err := New(KindHTTP, u.Value())
		if err != nil {
			t.Fatalf("Value() no longer validates: %v", err)
		}
		if again != u {
			t.Fatal("construction is not deterministic")
		}
	})
}

// FuzzCodec checks that both decoders invert their encoders and never panic.
func FuzzCodec(f *testing.F) {
	f.Add("a b/c")
	f.Add("%2F")
	f.Add("100%zz")
	f.Add("张三&李四")
	f.Add(string([]byte{0x00, 0x80, 0xff}))

	f.Fuzz(func(t *testing.T, input string) {
		if got := DecodeURI(EncodeURI(input)); got != input {
			t.Fatalf("DecodeURI(EncodeURI(%q)) = %q", input, got)
		}
		if got := DecodeURIComponent(EncodeURIComponent(input)); got != input {
			t.Fatalf("DecodeURIComponent(EncodeURIComponent(%q)) = %q", input, got)
		}

		_ = DecodeURI(input)
		_ = DecodeURIComponent(input)
		_, _ = DecodeURIComponentStrict(input)
	})
}

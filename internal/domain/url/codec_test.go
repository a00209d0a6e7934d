package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		wantURI       string
		wantComponent string
	}{
		{
			name:          "Space and slash",
			in:            "a b/c",
			wantURI:       "a%20b/c",
			wantComponent: "a%20b%2Fc",
		},
		{
			name:          "Unreserved survive both",
			in:            "AZaz09-_.~",
			wantURI:       "AZaz09-_.~",
			wantComponent: "AZaz09-_.~",
		},
		{
			name:          "Reserved-safe set",
			in:            ";/?:@&=+$,#[]",
			wantURI:       ";/?:@&=+$,#[]",
			wantComponent: "%3B%2F%3F%3A%40%26%3D%2B%24%2C%23%5B%5D",
		},
		{
			name:          "Multi-byte UTF-8",
			in:            "例子.测试",
			wantURI:       "%E4%BE%8B%E5%AD%90.%E6%B5%8B%E8%AF%95",
			wantComponent: "%E4%BE%8B%E5%AD%90.%E6%B5%8B%E8%AF%95",
		},
		{
			name:          "Control byte is zero padded",
			in:            "\n",
			wantURI:       "%0A",
			wantComponent: "%0A",
		},
		{
			name:          "Percent sign",
			in:            "100%",
			wantURI:       "100%25",
			wantComponent: "100%25",
		},
		{
			name:          "Marks outside the unreserved set",
			in:            "!'()*",
			wantURI:       "%21%27%28%29%2A",
			wantComponent: "%21%27%28%29%2A",
		},
		{
			name:          "Empty",
			in:            "",
			wantURI:       "",
			wantComponent: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantURI, EncodeURI(tt.in))
			assert.Equal(t, tt.wantComponent, EncodeURIComponent(tt.in))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		wantURI       string
		wantComponent string
	}{
		{
			name:          "Reserved slash",
			in:            "%2F",
			wantURI:       "%2F",
			wantComponent: "/",
		},
		{
			name:          "Lower-case hex",
			in:            "%2f%41",
			wantURI:       "%2fA",
			wantComponent: "/A",
		},
		{
			name:          "Whole reserved-safe set stays escaped for DecodeURI",
			in:            "%3B%2F%3F%3A%40%26%3D%2B%24%2C%23%5B%5D",
			wantURI:       "%3B%2F%3F%3A%40%26%3D%2B%24%2C%23%5B%5D",
			wantComponent: ";/?:@&=+$,#[]",
		},
		{
			name:          "Multi-byte UTF-8",
			in:            "%E5%BC%A0%E4%B8%89",
			wantURI:       "张三",
			wantComponent: "张三",
		},
		{
			name:          "Malformed triplet passes through",
			in:            "100%zz",
			wantURI:       "100%zz",
			wantComponent: "100%zz",
		},
		{
			name:          "Trailing percent",
			in:            "abc%",
			wantURI:       "abc%",
			wantComponent: "abc%",
		},
		{
			name:          "Truncated triplet",
			in:            "abc%4",
			wantURI:       "abc%4",
			wantComponent: "abc%4",
		},
		{
			name:          "Percent before valid escape",
			in:            "%%41",
			wantURI:       "%A",
			wantComponent: "%A",
		},
		{
			name:          "Plus is literal",
			in:            "a+b",
			wantURI:       "a+b",
			wantComponent: "a+b",
		},
		{
			name:          "No escapes",
			in:            "plain",
			wantURI:       "plain",
			wantComponent: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantURI, DecodeURI(tt.in))
			assert.Equal(t, tt.wantComponent, DecodeURIComponent(tt.in))
		})
	}
}

func TestDecodeReversesEncode(t *testing.T) {
	inputs := []string{
		"a b/c",
		"https://例子.测试/?name=张三&x=%41",
		";/?:@&=+$,#[]",
		"100%",
		string([]byte{0x00, 0xff, 0xfe}),
	}

	for _, in := range inputs {
		assert.Equal(t, in, DecodeURI(EncodeURI(in)), "uri flavour: %q", in)
		assert.Equal(t, in, DecodeURIComponent(EncodeURIComponent(in)), "component flavour: %q", in)
	}
}

func TestDecodeURIComponentStrict(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "Valid escapes", in: "a%20b%2Fc", want: "a b/c"},
		{name: "UTF-8", in: "%E6%9D%8E%E5%9B%9B", want: "李四"},
		{name: "Plus is literal", in: "a+b", want: "a+b"},
		{name: "Malformed triplet", in: "100%zz", wantErr: true},
		{name: "Trailing percent", in: "100%", wantErr: true},
		{name: "Incomplete UTF-8 sequence", in: "%E4%BD", wantErr: true},
		{name: "Invalid UTF-8 byte", in: "%FF", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeURIComponentStrict(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPercentEncoding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllowedTables(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if componentAllowed.contains(b) {
			assert.True(t, uriAllowed.contains(b), "componentAllowed must be a subset of uriAllowed: %q", b)
		}
		if reservedSafe.contains(b) {
			assert.True(t, uriAllowed.contains(b))
			assert.False(t, componentAllowed.contains(b))
		}
	}

	count := 0
	for i := 0; i < 256; i++ {
		if uriAllowed.contains(byte(i)) {
			count++
		}
	}
	assert.Equal(t, 66+13, count)
}

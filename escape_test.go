package webcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "given empty input, then returns empty output",
			in:   "",
			want: "",
		},
		{
			name: "given only safe characters, then passes through unchanged",
			in:   "AZaz09$-.!*'(),",
			want: "AZaz09$-.!*'(),",
		},
		{
			name: "given spaces, then substitutes plus",
			in:   "1 2 3",
			want: "1+2+3",
		},
		{
			name: "given reserved characters, then escapes them",
			in:   "x&y=z",
			want: "x%26y%3Dz",
		},
		{
			name: "given slash and plus, then escapes them",
			in:   "a/b+c",
			want: "a%2Fb%2Bc",
		},
		{
			name: "given multi-byte characters, then escapes byte by byte",
			in:   "é",
			want: "%C3%A9",
		},
		{
			name: "given control and high bytes, then escapes them",
			in:   "\x00\x7f\xff",
			want: "%00%7F%FF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	// Every byte value must survive encode/decode unchanged.
	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}

	got, err := Unescape(Escape(string(in)))
	require.NoError(t, err)
	assert.Equal(t, string(in), got)
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "given plus, then yields space",
			in:   "1+2",
			want: "1 2",
		},
		{
			name: "given lowercase hex escape, then decodes it",
			in:   "x%2fy",
			want: "x/y",
		},
		{
			name:    "given truncated escape, then fails",
			in:      "abc%2",
			wantErr: true,
		},
		{
			name:    "given bare percent, then fails",
			in:      "%",
			wantErr: true,
		},
		{
			name:    "given non-hex escape, then fails",
			in:      "%zz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unescape(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeFields(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   string
	}{
		{
			name:   "given no fields, then yields empty body",
			fields: nil,
			want:   "",
		},
		{
			name: "given fields needing escapes, then escapes name and value",
			fields: []Field{
				{Name: "a", Value: "1 2"},
				{Name: "b", Value: "x&y"},
			},
			want: "a=1+2&b=x%26y",
		},
		{
			name: "given duplicate names, then keeps them in input order",
			fields: []Field{
				{Name: "k", Value: "first"},
				{Name: "k", Value: "second"},
			},
			want: "k=first&k=second",
		},
		{
			name: "given an empty value, then keeps the pair",
			fields: []Field{
				{Name: "empty", Value: ""},
			},
			want: "empty=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeFields(tt.fields))
		})
	}
}

package json5_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/prettyjson5/internal/json5"
)

func TestEncode_Layout(t *testing.T) {
	t.Parallel()

	doc := &json5.Object{Members: []json5.Member{
		{Key: "name", Value: json5.String("x")},
		{Key: "tags", Value: json5.Array{json5.String("a"), json5.Null{}}},
		{Key: "empty", Value: &json5.Object{}},
		{Key: "none", Value: json5.Array{}},
		{Key: "ok", Value: json5.Bool(false)},
		{Key: "n", Value: json5.Number("1.5")},
	}}

	tests := []struct {
		name   string
		indent string
		want   string
	}{
		{
			name:   "two spaces",
			indent: "  ",
			want: `{
  "name": "x",
  "tags": [
    "a",
    null
  ],
  "empty": {},
  "none": [],
  "ok": false,
  "n": 1.5
}`,
		},
		{
			name:   "tab",
			indent: "\t",
			want:   "{\n\t\"name\": \"x\",\n\t\"tags\": [\n\t\t\"a\",\n\t\tnull\n\t],\n\t\"empty\": {},\n\t\"none\": [],\n\t\"ok\": false,\n\t\"n\": 1.5\n}",
		},
		{
			name:   "zero width",
			indent: "",
			want:   "{\n\"name\": \"x\",\n\"tags\": [\n\"a\",\nnull\n],\n\"empty\": {},\n\"none\": [],\n\"ok\": false,\n\"n\": 1.5\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, json5.Encode(doc, json5.EncodeOptions{Indent: tt.indent}))
		})
	}
}

func TestEncode_Scalars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "true", json5.Encode(json5.Bool(true), json5.EncodeOptions{}))
	assert.Equal(t, "null", json5.Encode(json5.Null{}, json5.EncodeOptions{}))
	assert.Equal(t, "-Infinity", json5.Encode(json5.Number("-Infinity"), json5.EncodeOptions{}))
	assert.Equal(t, "{}", json5.Encode(&json5.Object{}, json5.EncodeOptions{Indent: "  "}))
}

func TestEncode_Strings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		in          string
		ensureASCII bool
		want        string
	}{
		{name: "plain", in: "abc", want: `"abc"`},
		{name: "quotes and backslash", in: `say "hi" \o/`, want: `"say \"hi\" \\o/"`},
		{name: "short escapes", in: "\b\f\n\r\t", want: `"\b\f\n\r\t"`},
		{name: "control characters", in: "\x00\x1f\v", want: `"\u0000\u001f\u000b"`},
		{name: "non-ascii kept", in: "caf\u00e9 \u65e5\u672c", want: "\"caf\u00e9 \u65e5\u672c\""},
		{name: "non-ascii escaped", in: "caf\u00e9", ensureASCII: true, want: `"caf\u00e9"`},
		{name: "astral escaped as surrogates", in: "\U0001F600", ensureASCII: true, want: `"\ud83d\ude00"`},
		{name: "delete escaped in ascii mode", in: "\x7f", ensureASCII: true, want: `"\u007f"`},
		{name: "delete kept otherwise", in: "\x7f", want: "\"\x7f\""},
		{name: "single quote untouched", in: "it's", want: `"it's"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := json5.Encode(json5.String(tt.in), json5.EncodeOptions{EnsureASCII: tt.ensureASCII})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_KeysAreEscaped(t *testing.T) {
	t.Parallel()

	doc := &json5.Object{Members: []json5.Member{{Key: "na\u00efve \"k\"", Value: json5.Number("1")}}}

	got := json5.Encode(doc, json5.EncodeOptions{Indent: " ", EnsureASCII: true})
	assert.Equal(t, "{\n \"na\\u00efve \\\"k\\\"\": 1\n}", got)
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	input := `{b: [1, {c: 'd'}], a: "\u00e9", 'e': -0x10,}`

	v, err := json5.Parse(input)
	require.NoError(t, err)

	encoded := json5.Encode(v, json5.EncodeOptions{Indent: "  "})

	again, err := json5.Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, v, again)
	assert.Equal(t, encoded, json5.Encode(again, json5.EncodeOptions{Indent: "  "}))
}

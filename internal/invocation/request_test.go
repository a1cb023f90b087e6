package invocation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_JSONC(t *testing.T) {
	doc := `{
		// divide two numbers
		"path": ["math", "div"],
		"options": {
			"a": "10",
			"b": 4,
			"precision": [1],
			"verbose": true, /* trailing comma */
		},
	}`

	req, err := Decode([]byte(doc), FormatJSONC)
	require.NoError(t, err)
	require.Equal(t, []string{"math", "div"}, req.Path)
	require.Equal(t, map[string][]string{
		"a":         {"10"},
		"b":         {"4"},
		"precision": {"1"},
		"verbose":   {"true"},
	}, req.Options)
}

func TestDecode_YAML(t *testing.T) {
	doc := `
path: math sum
options:
  values: [1, 2.5, "3"]
  empty: []
`
	req, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, []string{"math", "sum"}, req.Path)
	require.Equal(t, map[string][]string{
		"values": {"1", "2.5", "3"},
		"empty":  {},
	}, req.Options)
}

func TestDecode_YAMLKeepsScalarText(t *testing.T) {
	doc := "path: [zip, lookup]\noptions:\n  code: 01234\n  count: 1_000\n  price: 1.50\n  flags: [007, 0x1F]\n"

	req, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, []string{"zip", "lookup"}, req.Path)
	require.Equal(t, map[string][]string{
		"code":  {"01234"},
		"count": {"1_000"},
		"price": {"1.50"},
		"flags": {"007", "0x1F"},
	}, req.Options)
}

func TestDecode_YAMLNotAMapping(t *testing.T) {
	_, err := Decode([]byte("- math\n- sum\n"), FormatYAML)
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDecode_NoOptions(t *testing.T) {
	req, err := Decode([]byte(`{"path": ["version"]}`), FormatJSONC)
	require.NoError(t, err)
	require.Equal(t, []string{"version"}, req.Path)
	require.Empty(t, req.Options)
	require.NotNil(t, req.Options)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
	}{
		{"unknown field", `{"path": [], "extra": 1}`, FormatJSONC},
		{"path of numbers", `{"path": [1, 2]}`, FormatJSONC},
		{"path object", `{"path": {"a": 1}}`, FormatJSONC},
		{"options list", `{"options": [1]}`, FormatJSONC},
		{"nested value", `{"options": {"a": {"b": 1}}}`, FormatJSONC},
		{"nested list", "options:\n  a: [[1]]\n", FormatYAML},
		{"empty yaml", "", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc), tt.format)
			require.ErrorIs(t, err, ErrInvalidRequest)
		})
	}

	_, err := Decode([]byte(`{"path": [`), FormatJSONC)
	require.Error(t, err)

	_, err = Decode([]byte("path: [unterminated"), FormatYAML)
	require.Error(t, err)

	_, err = Decode([]byte("{}"), Format(9))
	require.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
		want Format
	}{
		{"json extension", "req.json", "path: x", FormatJSONC},
		{"jsonc extension", "req.JSONC", "", FormatJSONC},
		{"yaml extension", "req.yml", "{}", FormatYAML},
		{"sniff object", "-", "  // comment\n{\"path\": []}", FormatJSONC},
		{"sniff yaml", "-", "path: [a]", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetectFormat(tt.file, []byte(tt.data)))
		})
	}
}

func TestRead(t *testing.T) {
	req, err := Read(strings.NewReader("path: [echo]\noptions:\n  words: [hi, there]\n"), "-")
	require.NoError(t, err)
	require.Equal(t, []string{"echo"}, req.Path)
	require.Equal(t, []string{"hi", "there"}, req.Options["words"])
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "req.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"path": ["greet"], "options": {"name": "ada"}}`), 0600))

	req, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, Request{Path: []string{"greet"}, Options: map[string][]string{"name": {"ada"}}}, req)

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestRequest_String(t *testing.T) {
	req := Request{
		Path:    []string{"math", "div"},
		Options: map[string][]string{"b": {"4"}, "a": {"10"}},
	}
	require.Equal(t, "math div a=[10] b=[4]", req.String())
	require.Equal(t, "", Request{}.String())
}

func TestFormat_String(t *testing.T) {
	require.Equal(t, "jsonc", FormatJSONC.String())
	require.Equal(t, "yaml", FormatYAML.String())
	require.Equal(t, "unknown", Format(7).String())
}

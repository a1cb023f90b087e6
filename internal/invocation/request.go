// Package invocation decodes pre-parsed request documents.
//
// A request names a command path and its parameter values by key:
//
//	// JSONC
//	{
//	  "path": ["math", "div"],
//	  "options": {"a": "10", "b": 4, "precision": [1]}, // trailing commas allowed
//	}
//
// The same document may be written in YAML. Scalar option values are
// shorthand for a one-element list.
package invocation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRequest is wrapped by every decoding error about document structure.
var ErrInvalidRequest = errors.New("invalid request")

// Format is the encoding of a request document.
type Format int

const (
	FormatJSONC Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSONC:
		return "jsonc"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Request is a decoded pre-parsed invocation.
type Request struct {
	Path    []string
	Options map[string][]string
}

// String renders the request for logs and history, keys sorted.
func (r Request) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(r.Path, " "))

	keys := make([]string, 0, len(r.Options))
	for k := range r.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=[%s]", k, strings.Join(r.Options[k], ","))
	}
	return strings.TrimSpace(b.String())
}

// DetectFormat picks a format from the file extension, falling back to the
// first significant byte: '{' means JSONC, anything else YAML.
func DetectFormat(name string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".jsonc":
		return FormatJSONC
	case ".yaml", ".yml":
		return FormatYAML
	}

	trimmed := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSONC
	}
	return FormatYAML
}

// Decode parses a request document in the given format.
func Decode(data []byte, format Format) (Request, error) {
	var doc map[string]any

	switch format {
	case FormatJSONC:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return Request{}, fmt.Errorf("parse jsonc request: %w", err)
		}
	case FormatYAML:
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return Request{}, fmt.Errorf("parse yaml request: %w", err)
		}
		value, err := yamlValue(&root)
		if err != nil {
			return Request{}, err
		}
		if value != nil {
			m, ok := value.(map[string]any)
			if !ok {
				return Request{}, fmt.Errorf("%w: document must be a mapping", ErrInvalidRequest)
			}
			doc = m
		}
	default:
		return Request{}, fmt.Errorf("unknown request format %d", format)
	}

	return fromDocument(doc)
}

// yamlValue converts a YAML node into plain maps, lists and strings. Scalars
// keep their source text so values like 01234 or 1_000 reach the parsers
// unchanged.
func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml node at line %d", ErrInvalidRequest, n.Line)
	}
}

// Read decodes a request from r; name picks the format and may be "-".
func Read(r io.Reader, name string) (Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Request{}, fmt.Errorf("reading %s: %w", name, err)
	}
	return Decode(data, DetectFormat(name, data))
}

// ReadFile decodes the request document at path; "-" reads standard input.
func ReadFile(path string) (Request, error) {
	if path == "-" {
		return Read(os.Stdin, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Request{}, fmt.Errorf("reading %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	req, err := Read(f, path)
	if err != nil {
		return Request{}, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

func fromDocument(doc map[string]any) (Request, error) {
	if doc == nil {
		return Request{}, fmt.Errorf("%w: empty document", ErrInvalidRequest)
	}

	req := Request{Options: map[string][]string{}}
	for key, value := range doc {
		switch key {
		case "path":
			path, err := pathOf(value)
			if err != nil {
				return Request{}, err
			}
			req.Path = path
		case "options":
			options, err := optionsOf(value)
			if err != nil {
				return Request{}, err
			}
			req.Options = options
		default:
			return Request{}, fmt.Errorf("%w: unknown field %q", ErrInvalidRequest, key)
		}
	}
	return req, nil
}

// pathOf accepts a list of words or a single space-separated string.
func pathOf(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.Fields(v), nil
	case []any:
		path := make([]string, 0, len(v))
		for _, item := range v {
			word, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: path words must be strings, got %T", ErrInvalidRequest, item)
			}
			path = append(path, word)
		}
		return path, nil
	default:
		return nil, fmt.Errorf("%w: path must be a list or a string, got %T", ErrInvalidRequest, value)
	}
}

func optionsOf(value any) (map[string][]string, error) {
	options := map[string][]string{}
	if value == nil {
		return options, nil
	}

	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: options must be a mapping, got %T", ErrInvalidRequest, value)
	}

	for key, raw := range m {
		var values []string
		switch v := raw.(type) {
		case []any:
			values = make([]string, 0, len(v))
			for _, item := range v {
				s, err := scalar(item)
				if err != nil {
					return nil, fmt.Errorf("option %q: %w", key, err)
				}
				values = append(values, s)
			}
		default:
			s, err := scalar(v)
			if err != nil {
				return nil, fmt.Errorf("option %q: %w", key, err)
			}
			values = []string{s}
		}
		options[key] = values
	}
	return options, nil
}

// scalar renders a decoded scalar back to the raw text a parser expects.
func scalar(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	case bool:
		return strconv.FormatBool(s), nil
	case int:
		return strconv.Itoa(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case uint64:
		return strconv.FormatUint(s, 10), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: values must be scalars, got %T", ErrInvalidRequest, v)
	}
}

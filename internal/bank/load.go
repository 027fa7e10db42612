package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a bank document contains no questions.
var ErrEmpty = errors.New("question bank is empty")

// LoadError reports that a bank could not be obtained. It is fatal to
// starting a quiz.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load question bank %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Format is the encoding of a bank document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the document format from a path or URL extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatOf(source string) Format {
	p := source
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Path != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Loader fetches question banks from local files or http(s) URLs.
type Loader struct {
	Client *http.Client
}

// Load reads, schema-validates and decodes the bank at source using a
// default Loader.
func Load(ctx context.Context, source string) ([]Question, error) {
	return (&Loader{}).Load(ctx, source)
}

// Load reads, schema-validates and decodes the bank at source. Question
// order is preserved exactly as written.
func (l *Loader) Load(ctx context.Context, source string) ([]Question, error) {
	data, err := l.read(ctx, source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	qs, err := Parse(data, FormatOf(source))
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return qs, nil
}

// Parse decodes a bank document. Both formats are validated against the
// same schema before decoding into Questions. Numbers keep their written
// form, so large numeric ids are not rounded.
func Parse(data []byte, format Format) ([]Question, error) {
	var doc any
	if format == FormatYAML {
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		v, err := yamlValue(&root)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		doc = v
	} else {
		v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		doc = v
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-encode bank: %w", err)
	}
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if len(qs) == 0 {
		return nil, ErrEmpty
	}
	return qs, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if !isURL(source) {
		return os.ReadFile(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	// Always fetch a fresh copy of the bank.
	req.Header.Set("Cache-Control", "no-store")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// yamlValue converts a YAML node to the values jsonschema.UnmarshalJSON
// produces: numbers become json.Number holding the literal text, mapping
// keys become strings.
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
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = v
		}
		return out, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str":
			return n.Value, nil
		case "!!int", "!!float":
			if isJSONNumber(n.Value) {
				return json.Number(n.Value), nil
			}
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node", n.Line)
	}
}

func isJSONNumber(s string) bool {
	if s == "" || !(s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RunnerConfig is an insertion-ordered mapping of Jest configuration keys to
// arbitrary values. Values are never modified in place: With returns a copy.
// Decoded nested objects are RunnerConfig values as well, since the order of
// keys such as moduleNameMapper decides which pattern Jest applies first.
//
// Key order matters because the config travels to Jest as a JSON string and
// is compared byte-for-byte by callers that echo it back.
type RunnerConfig struct {
	keys   []string
	values map[string]any
}

// NewRunnerConfig builds a RunnerConfig from alternating key/value pairs.
// It panics if a key is not a string or a value is missing.
func NewRunnerConfig(pairs ...any) RunnerConfig {
	if len(pairs)%2 != 0 {
		panic("model: NewRunnerConfig requires key/value pairs")
	}

	cfg := RunnerConfig{}

	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("model: NewRunnerConfig key %v is not a string", pairs[i]))
		}

		cfg = cfg.With(key, pairs[i+1])
	}

	return cfg
}

// With returns a copy of the config with key set to value. Existing keys keep
// their position; new keys are appended.
func (c RunnerConfig) With(key string, value any) RunnerConfig {
	out := RunnerConfig{
		keys:   make([]string, len(c.keys), len(c.keys)+1),
		values: make(map[string]any, len(c.values)+1),
	}

	copy(out.keys, c.keys)

	for k, v := range c.values {
		out.values[k] = v
	}

	if _, exists := out.values[key]; !exists {
		out.keys = append(out.keys, key)
	}

	out.values[key] = value

	return out
}

// Get returns the value stored under key.
func (c RunnerConfig) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (c RunnerConfig) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)

	return keys
}

// Len returns the number of keys.
func (c RunnerConfig) Len() int {
	return len(c.keys)
}

// MarshalJSON encodes the config as a JSON object in insertion order. Unlike
// json.Marshal it leaves <, > and & unescaped, as JSON.stringify does.
func (c RunnerConfig) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := encodeJSON(key)
		if err != nil {
			return nil, err
		}

		v, err := encodeJSON(c.values[key])
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", key, err)
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes a JSON object. Nested objects decode to RunnerConfig
// values too, so key order is kept at every level.
func (c *RunnerConfig) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("runner config must be a JSON object")
	}

	cfg, err := decodeJSONObject(dec)
	if err != nil {
		return err
	}

	*c = cfg

	return nil
}

// decodeJSONObject reads the members of an object whose opening brace has
// already been consumed.
func decodeJSONObject(dec *json.Decoder) (RunnerConfig, error) {
	cfg := RunnerConfig{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return RunnerConfig{}, err
		}

		key, ok := tok.(string)
		if !ok {
			return RunnerConfig{}, fmt.Errorf("unexpected token %v in runner config", tok)
		}

		value, err := decodeJSONValue(dec)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("decode %q: %w", key, err)
		}

		cfg = cfg.With(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return RunnerConfig{}, err
	}

	return cfg, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeJSONObject(dec)
	case '[':
		items := []any{}

		for dec.More() {
			item, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}

			items = append(items, item)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return items, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v in runner config", delim)
	}
}

// UnmarshalYAML decodes a YAML mapping, keeping key order at every level.
func (c *RunnerConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("runner config must be a YAML mapping (line %d)", node.Line)
	}

	cfg, err := decodeYAMLMapping(node)
	if err != nil {
		return err
	}

	*c = cfg

	return nil
}

func decodeYAMLMapping(node *yaml.Node) (RunnerConfig, error) {
	cfg := RunnerConfig{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		value, err := decodeYAMLValue(valueNode)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("decode %q: %w", keyNode.Value, err)
		}

		cfg = cfg.With(keyNode.Value, value)
	}

	return cfg, nil
}

func decodeYAMLValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodeYAMLValue(node.Alias)
	case yaml.MappingNode:
		return decodeYAMLMapping(node)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))

		for _, child := range node.Content {
			item, err := decodeYAMLValue(child)
			if err != nil {
				return nil, err
			}

			items = append(items, item)
		}

		return items, nil
	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, err
		}

		return value, nil
	}
}

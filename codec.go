package vecmap

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Decoding builds the containers through Entry(k).OrInsert and GetOrInsert:
// when the input repeats a key (or a set value), the FIRST occurrence is
// kept. FromPairs, CollectMap and Extend keep the LAST one instead.

var (
	_ json.Marshaler   = (*Map[string, int])(nil)
	_ json.Unmarshaler = (*Map[string, int])(nil)
	_ yaml.Marshaler   = (*Map[string, int])(nil)
	_ yaml.Unmarshaler = (*Map[string, int])(nil)

	_ json.Marshaler   = (*Set[string])(nil)
	_ json.Unmarshaler = (*Set[string])(nil)
	_ yaml.Marshaler   = (*Set[string])(nil)
	_ yaml.Unmarshaler = (*Set[string])(nil)
)

// MarshalJSON encodes the map as a JSON object in iteration order.
// Keys must be strings, integers or implement encoding.TextMarshaler.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, p := range m.backing.items {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalJSONKey(p.Key)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the map. Duplicate keys keep
// their first value. null leaves the map unchanged.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	ok, err := openJSON(dec, '{')
	if !ok || err != nil {
		return err
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, err := unmarshalJSONKey[K](tok.(string))
		if err != nil {
			return err
		}

		var value V
		if err := dec.Decode(&value); err != nil {
			return err
		}

		m.Entry(key).OrInsert(value)
	}

	// Closing brace.
	_, err = dec.Token()

	return err
}

// MarshalJSON encodes the set as a JSON array in iteration order.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	items := s.backing.items
	if items == nil {
		items = []T{}
	}

	return json.Marshal(items)
}

// UnmarshalJSON decodes a JSON array into the set. Duplicate values keep
// their first occurrence. null leaves the set unchanged.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	ok, err := openJSON(dec, '[')
	if !ok || err != nil {
		return err
	}

	for dec.More() {
		var value T
		if err := dec.Decode(&value); err != nil {
			return err
		}

		s.GetOrInsert(value)
	}

	// Closing bracket.
	_, err = dec.Token()

	return err
}

// MarshalYAML encodes the map as a YAML mapping in iteration order.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, p := range m.backing.items {
		var key, value yaml.Node
		if err := key.Encode(p.Key); err != nil {
			return nil, err
		}
		if err := value.Encode(p.Value); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &key, &value)
	}

	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into the map. Duplicate keys keep
// their first value. Merge keys (<<) are expanded: a merged pair is added
// unless the mapping sets its key explicitly, and among merged mappings the
// earlier one wins.
func (m *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("vecmap: line %d: cannot decode %s into a map", node.Line, node.ShortTag())
	}

	pairs, err := yamlPairs(node)
	if err != nil {
		return err
	}

	var (
		keys     = make([]K, len(pairs))
		explicit = Set[K]{equal: m.equal}
	)

	for i, p := range pairs {
		if err := p.key.Decode(&keys[i]); err != nil {
			return err
		}

		if !p.merged {
			explicit.Insert(keys[i])
		}
	}

	for i, p := range pairs {
		if p.merged && explicit.Contains(keys[i]) {
			continue
		}

		var value V
		if err := p.value.Decode(&value); err != nil {
			return err
		}

		m.Entry(keys[i]).OrInsert(value)
	}

	return nil
}

// MarshalYAML encodes the set as a YAML sequence in iteration order.
func (s *Set[T]) MarshalYAML() (any, error) {
	items := s.backing.items
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// UnmarshalYAML decodes a YAML sequence into the set. Duplicate values keep
// their first occurrence.
func (s *Set[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("vecmap: line %d: cannot decode %s into a set", node.Line, node.ShortTag())
	}

	for _, item := range node.Content {
		var value T
		if err := item.Decode(&value); err != nil {
			return err
		}

		s.GetOrInsert(value)
	}

	return nil
}

const yamlMergeTag = "!!merge"

type yamlPair struct {
	key, value *yaml.Node
	// Taken from a mapping under a merge key.
	merged bool
}

// yamlPairs lists the pairs of a mapping node in document order, with the
// mappings under merge keys expanded in place. Within every merged mapping
// its own pairs come before the ones it merges in turn.
func yamlPairs(node *yaml.Node) ([]yamlPair, error) {
	var pairs []yamlPair

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.ShortTag() != yamlMergeTag {
			pairs = append(pairs, yamlPair{key: key, value: value})
			continue
		}

		sources := []*yaml.Node{value}
		if v := yamlResolve(value); v.Kind == yaml.SequenceNode {
			sources = v.Content
		}

		for _, src := range sources {
			src = yamlResolve(src)
			if src.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("vecmap: line %d: cannot merge %s into a map", src.Line, src.ShortTag())
			}

			nested, err := yamlPairs(src)
			if err != nil {
				return nil, err
			}

			for _, merged := range []bool{false, true} {
				for _, p := range nested {
					if p.merged == merged {
						pairs = append(pairs, yamlPair{key: p.key, value: p.value, merged: true})
					}
				}
			}
		}
	}

	return pairs, nil
}

func yamlResolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

// openJSON reads the opening delimiter. It reports false for a null value.
func openJSON(dec *json.Decoder, delim json.Delim) (bool, error) {
	tok, err := dec.Token()
	if err != nil {
		return false, err
	}

	if tok == nil {
		return false, nil
	}

	if d, ok := tok.(json.Delim); !ok || d != delim {
		return false, fmt.Errorf("vecmap: expected %v, got %v", delim, tok)
	}

	return true, nil
}

// marshalJSONKey follows the rules encoding/json applies to map keys.
func marshalJSONKey[K comparable](key K) ([]byte, error) {
	rv := reflect.ValueOf(&key).Elem()

	if rv.Kind() == reflect.String {
		return json.Marshal(rv.String())
	}

	if tm, ok := any(key).(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}

		return json.Marshal(string(text))
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return json.Marshal(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return json.Marshal(strconv.FormatUint(rv.Uint(), 10))
	}

	return nil, fmt.Errorf("vecmap: %w: %s", ErrUnsupportedKey, rv.Type())
}

func unmarshalJSONKey[K comparable](s string) (K, error) {
	var key K

	if tu, ok := any(&key).(encoding.TextUnmarshaler); ok {
		return key, tu.UnmarshalText([]byte(s))
	}

	rv := reflect.ValueOf(&key).Elem()

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
		return key, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return key, fmt.Errorf("vecmap: key %q: %w", s, err)
		}
		rv.SetInt(n)

		return key, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return key, fmt.Errorf("vecmap: key %q: %w", s, err)
		}
		rv.SetUint(n)

		return key, nil
	}

	return key, fmt.Errorf("vecmap: %w: %s", ErrUnsupportedKey, rv.Type())
}

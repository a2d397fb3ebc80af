package setop

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrNotScalar is returned when a set document holds a mapping or a sequence
// where a scalar is expected.
var ErrNotScalar = errors.New("not a scalar")

// Scalar is a YAML scalar as it was written: two scalars are the same set
// element when both their resolved tag and their text match, so 1 and "1"
// are different elements.
type Scalar struct {
	Tag   string
	Value string
}

func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrNotScalar)
	}

	s.Tag = node.ShortTag()
	s.Value = node.Value

	return nil
}

func (s Scalar) MarshalYAML() (any, error) {
	return s.node(), nil
}

// MarshalJSON encodes the scalar as the JSON value its tag resolves to.
// Infinities and NaN have no JSON number, they're written as strings.
func (s Scalar) MarshalJSON() ([]byte, error) {
	var v any
	if err := s.node().Decode(&v); err != nil {
		return nil, err
	}

	if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		return json.Marshal(s.Value)
	}

	return json.Marshal(v)
}

// MarshalText returns the text of the scalar, which is how it's written as
// a JSON object key.
func (s Scalar) MarshalText() ([]byte, error) {
	return []byte(s.Value), nil
}

func (s Scalar) String() string {
	return s.Value
}

func (s Scalar) node() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: s.Tag, Value: s.Value}
}

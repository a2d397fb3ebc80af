// Package setop implements the operations of the setop command over YAML and
// JSON documents.
package setop

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/homier/vecmap"
)

var (
	ErrUnknownOp     = errors.New("unknown operation")
	ErrUnknownFormat = errors.New("unknown format")
	ErrNotMapping    = errors.New("document is not a mapping")
)

type Op string

const (
	OpUnion     Op = "union"
	OpIntersect Op = "intersect"
	OpDiff      Op = "diff"
	OpSymDiff   Op = "symdiff"
)

// Ops lists the binary set operations in the order they're documented.
var Ops = []Op{OpUnion, OpIntersect, OpDiff, OpSymDiff}

// Apply computes a op b. The result holds the values of a in a's order,
// followed by the values taken from b in b's order.
func Apply(op Op, a, b *vecmap.Set[Scalar]) (*vecmap.Set[Scalar], error) {
	switch op {
	case OpUnion:
		return a.Or(b), nil
	case OpIntersect:
		return a.And(b), nil
	case OpDiff:
		return a.Sub(b), nil
	case OpSymDiff:
		return a.Xor(b), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
}

// Subset reports whether every value of a is in b.
func Subset(a, b *vecmap.Set[Scalar]) bool {
	return a.IsSubset(b)
}

// ReadSet decodes a sequence of scalars. Repeated values keep their first
// position. An empty document is an empty set.
func ReadSet(r io.Reader) (*vecmap.Set[Scalar], error) {
	s := vecmap.NewSet[Scalar](0)

	if err := yaml.NewDecoder(r).Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return s, nil
}

// Dedupe decodes a mapping that may repeat keys. The first occurrence of a
// key is kept, every later one is dropped and reported to log. Keys are
// compared like set elements, so 1 and "1" are different keys.
//
// Merge keys (<<) are expanded: a merged pair is kept unless the mapping
// sets its key explicitly, and among merged mappings the earlier one wins.
// Neither case is reported as a duplicate.
//
// JSON input is accepted as well, being a subset of YAML.
func Dedupe(r io.Reader, log logrus.FieldLogger) (*vecmap.Map[Scalar, any], error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return vecmap.NewMap[Scalar, any](0), nil
		}
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %w", root.Line, ErrNotMapping)
	}

	pairs, err := mappingPairs(root)
	if err != nil {
		return nil, err
	}

	var (
		keys     = make([]Scalar, len(pairs))
		explicit = vecmap.NewSet[Scalar](len(pairs))
	)

	for i, p := range pairs {
		if err := p.key.Decode(&keys[i]); err != nil {
			return nil, fmt.Errorf("mapping key: %w", err)
		}

		if !p.merged {
			explicit.Insert(keys[i])
		}
	}

	var (
		out = vecmap.NewMap[Scalar, any](explicit.Len())
		// Line of the kept occurrence of each key.
		lines   = vecmap.NewMap[Scalar, int](explicit.Len())
		dropped int
	)

	for i, p := range pairs {
		key := keys[i]
		if p.merged && explicit.Contains(key) {
			continue
		}

		e := out.Entry(key)
		if e.IsOccupied() {
			if p.merged {
				continue
			}

			first, _ := lines.Get(key)
			log.WithFields(logrus.Fields{
				"key":   key.Value,
				"line":  p.key.Line,
				"first": first,
			}).Warn("dropping duplicate key")
			dropped++

			continue
		}

		var v any
		if err := p.value.Decode(&v); err != nil {
			return nil, err
		}

		e.OrInsert(v)
		lines.Insert(key, p.key.Line)
	}

	log.WithFields(logrus.Fields{
		"kept":    out.Len(),
		"dropped": dropped,
	}).Debug("deduplicated mapping")

	out.ShrinkToFit()

	return out, nil
}

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatJSON:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write encodes v to w as a single document.
func Write(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

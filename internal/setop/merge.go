package setop

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrBadMerge is returned when a merge key holds something else than a
// mapping or a sequence of mappings.
var ErrBadMerge = errors.New("merge value is not a mapping")

const mergeTag = "!!merge"

type pair struct {
	key, value *yaml.Node
	// Taken from a mapping under a merge key.
	merged bool
}

// mappingPairs lists the pairs of a mapping node in document order, with the
// mappings under merge keys expanded in place. Within a merged mapping its
// own pairs come before the ones it merges in turn, so that first-wins gives
// them precedence.
func mappingPairs(node *yaml.Node) ([]pair, error) {
	var pairs []pair

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.ShortTag() != mergeTag {
			pairs = append(pairs, pair{key: key, value: value})
			continue
		}

		sources := []*yaml.Node{value}
		if v := resolve(value); v.Kind == yaml.SequenceNode {
			sources = v.Content
		}

		for _, src := range sources {
			src = resolve(src)
			if src.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: %w", src.Line, ErrBadMerge)
			}

			nested, err := mappingPairs(src)
			if err != nil {
				return nil, err
			}

			for _, merged := range []bool{false, true} {
				for _, p := range nested {
					if p.merged == merged {
						pairs = append(pairs, pair{key: p.key, value: p.value, merged: true})
					}
				}
			}
		}
	}

	return pairs, nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

package vecmap

import (
	"fmt"
	"strings"
)

// String renders the map as {k1: v1, k2: v2} in iteration order.
func (m *Map[K, V]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	for i, p := range m.backing.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", p.Key, p.Value)
	}
	sb.WriteByte('}')

	return sb.String()
}

// String renders the set as {v1, v2} in iteration order.
func (s *Set[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	for i, v := range s.backing.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte('}')

	return sb.String()
}

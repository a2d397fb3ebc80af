package vecmap

type config[T comparable] struct {
	equal func(a, b T) bool
}

type Option[T comparable] func(c *config[T])

// Override the default equivalence relation (==).
// f must be reflexive, symmetric and transitive. It's useful when the
// identity of a key is only a part of it, e.g. case-insensitive strings.
func WithEqualFunc[T comparable](f func(a, b T) bool) Option[T] {
	return func(c *config[T]) {
		c.equal = f
	}
}

func applyOptions[T comparable](opts []Option[T]) config[T] {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

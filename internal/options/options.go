// Package options implements generic functional options.
package options

// OptionConstructor builds the default value that callbacks are applied to.
type OptionConstructor[T any] func() T

// OptionCallback mutates a configuration value in place.
type OptionCallback[T any] func(*T)

// ApplyOptions builds a value with the constructor (zero value when it is nil)
// and applies every callback in order.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		if cb != nil {
			cb(&opts)
		}
	}

	return opts
}

// Convert turns a slice of named option functions into callbacks.
func Convert[T any, F ~func(*T)](opts []F) []OptionCallback[T] {
	cbs := make([]OptionCallback[T], 0, len(opts))
	for _, opt := range opts {
		cbs = append(cbs, OptionCallback[T](opt))
	}

	return cbs
}

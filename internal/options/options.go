// Package options implements the functional options used to configure
// gutil writers, frames, loggers and schedulers.
//
// Each configurable type declares an alias such as
//
//	type FrameOption = options.Option[*Frame]
//
// and builds its With* helpers from New or NoError.
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to Option.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New returns an option that may reject the target's configuration.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError returns an option for setters that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

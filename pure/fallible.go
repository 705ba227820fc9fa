package pure

// Fallible memoizes a calculation that can fail. Only successful outputs are
// cached, so a failed input is retried on its next call.
type Fallible[I comparable, O any] struct {
	calculation func(I) (O, error)
	memo[I, O]
}

// NewFallible wraps calculation in a Fallible with an empty cache.
// It panics if calculation is nil.
func NewFallible[I comparable, O any](calculation func(I) (O, error), opts ...Option) *Fallible[I, O] {
	if calculation == nil {
		panic("pure: nil calculation")
	}
	return &Fallible[I, O]{
		calculation: calculation,
		memo:        newMemo[I, O](opts),
	}
}

// Value returns the cached output for arg, or runs the calculation.
// An error from the calculation is returned as is, with the zero output.
func (f *Fallible[I, O]) Value(arg I) (O, error) {
	if v, ok := f.load(arg); ok {
		return v, nil
	}
	return f.compute(arg, func() (O, error) {
		return f.calculation(arg)
	})
}

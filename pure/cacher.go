package pure

// Cacher memoizes a calculation over comparable inputs.
type Cacher[I comparable, O any] struct {
	calculation func(I) O
	memo[I, O]
}

// New wraps calculation in a Cacher with an empty cache.
// It panics if calculation is nil.
func New[I comparable, O any](calculation func(I) O, opts ...Option) *Cacher[I, O] {
	if calculation == nil {
		panic("pure: nil calculation")
	}
	return &Cacher[I, O]{
		calculation: calculation,
		memo:        newMemo[I, O](opts),
	}
}

// Value returns the output of the calculation for arg, running the calculation
// only the first time arg is seen. A panic from the calculation propagates to
// the caller and nothing is cached for arg.
func (c *Cacher[I, O]) Value(arg I) O {
	if v, ok := c.load(arg); ok {
		return v
	}
	v, _ := c.compute(arg, func() (O, error) {
		return c.calculation(arg), nil
	})
	return v
}

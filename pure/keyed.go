package pure

import "fmt"

// Keyed memoizes a calculation whose inputs cannot be used as map keys.
// Two inputs are the same input when their derived keys are equal.
type Keyed[I any, K comparable, O any] struct {
	calculation func(I) O
	key         func(I) K
	memo[K, O]
}

// NewKeyed wraps calculation, caching outputs under key(arg).
// It panics if calculation or key is nil.
func NewKeyed[I any, K comparable, O any](
	calculation func(I) O,
	key func(I) K,
	opts ...Option,
) *Keyed[I, K, O] {
	if calculation == nil {
		panic("pure: nil calculation")
	}
	if key == nil {
		panic("pure: nil key function")
	}
	return &Keyed[I, K, O]{
		calculation: calculation,
		key:         key,
		memo:        newMemo[K, O](opts),
	}
}

// NewStringer wraps calculation, caching outputs under arg.String().
func NewStringer[I fmt.Stringer, O any](calculation func(I) O, opts ...Option) *Keyed[I, string, O] {
	return NewKeyed(calculation, func(i I) string {
		return i.String()
	}, opts...)
}

// Value returns the output of the calculation for arg, running the calculation
// only the first time the key of arg is seen.
func (k *Keyed[I, K, O]) Value(arg I) O {
	key := k.key(arg)
	if v, ok := k.load(key); ok {
		return v
	}
	v, _ := k.compute(key, func() (O, error) {
		return k.calculation(arg), nil
	})
	return v
}

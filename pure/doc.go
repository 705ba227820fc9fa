// Package pure memoizes single-argument pure functions.
//
// A Cacher is not just a utility to add memoization.
// Wrapping a function in a Cacher *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The centerpiece is Cacher, which remembers the output of a calculation for
// every input it has seen, so each distinct input is computed at most once over
// the Cacher's lifetime. Entries are never evicted.
//
// Variants:
//   - Cacher: comparable inputs, total calculations.
//   - Keyed and NewStringer: inputs that are not comparable, keyed by a derived value.
//   - Fallible: calculations returning an error. Failures are returned unchanged and never cached.
//
// Keys must equal themselves. A float key holding NaN never matches its own
// entry, so every call with NaN recomputes and adds another entry.
//
// A Cacher is not safe for concurrent use. Callers sharing one across
// goroutines must guard every call to Value with their own lock.
//
// Outputs are returned by value. To memoize something expensive to copy, make
// the output type a pointer and treat the pointee as immutable.
//
// WARNING: Do not cache impure functions (e.g., those depending on time, I/O, etc).
package pure

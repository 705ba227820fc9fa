package pure

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// keyDigest fingerprints a key for log correlation. It is never used for lookups.
func keyDigest(key any) uint64 {
	if s, ok := key.(string); ok {
		return xxhash.Sum64String(s)
	}
	// fmt recovers from String methods panicking on nil receivers.
	return xxhash.Sum64String(fmt.Sprint(key))
}

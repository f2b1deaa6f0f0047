package rangeset

import (
	"github.com/cespare/xxhash/v2"
)

// Digest returns an xxhash64 fingerprint of the canonical text of ranges.
// Equal canonical sets always share a digest.
func Digest(ranges []Range) uint64 {
	hasher := xxhash.New()
	for i, r := range ranges {
		if i > 0 {
			_, _ = hasher.WriteString(",")
		}
		_, _ = hasher.WriteString(r.String())
	}
	return hasher.Sum64()
}

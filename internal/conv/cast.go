package conv

import (
	"fmt"
	"math"
)

// IntToUint64 converts a non-negative int to uint64.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int, failing when it exceeds math.MaxInt.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// MustUint64 converts a logical index known to be non-negative.
// It panics on a negative value, which indicates a broken caller invariant.
func MustUint64(v int) uint64 {
	u, err := IntToUint64(v)
	if err != nil {
		panic(err)
	}
	return u
}

// MustInt is the inverse of MustUint64.
func MustInt(v uint64) int {
	i, err := Uint64ToInt(v)
	if err != nil {
		panic(err)
	}
	return i
}

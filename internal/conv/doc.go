// Package conv provides checked conversions between Go's platform int and
// the fixed-width unsigned types used by position bitmaps.
//
// Logical indices are non-negative ints; bitmaps store them as uint64.
// Callers that can prove a value is in range may cast directly instead.
package conv

// Package conv holds the one integer conversion the NFA builder needs:
// its state-id counter grows as a plain int while compiling, but every
// id that ends up in a built automaton is a fixed-width StateID (uint32).
package conv

import "math"

// IntToUint32 narrows n to uint32, panicking if it doesn't fit. A pattern
// whose state count overflows uint32 is so far past anything a grep-line
// pattern produces that this can only mean a bug upstream, so there is no
// error return to plumb through the builder for it.
func IntToUint32(n int) uint32 {
	// Compare as uint, not uint32: on a 32-bit platform int itself can't
	// hold math.MaxUint32, so comparing against a uint32-typed bound would
	// either not compile or truncate first.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}

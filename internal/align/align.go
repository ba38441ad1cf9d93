// Package align provides alignment arithmetic shared by the resource layer.
package align

// PowerOfTwo reports whether n is a positive power of two.
func PowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Up rounds n up to the next multiple of a. a must be a power of two.
func Up(n, a int) int {
	return (n + a - 1) &^ (a - 1)
}

// Padding returns how many bytes must be skipped from addr to reach the next
// a-aligned address. a must be a power of two.
func Padding(addr uintptr, a int) int {
	rem := int(addr) & (a - 1)
	if rem == 0 {
		return 0
	}
	return a - rem
}

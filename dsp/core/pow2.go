package core

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n. Values <= 1 map to 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// LargestPowerOfTwoAtMost returns the largest power of two <= n, or 0 for n < 1.
func LargestPowerOfTwoAtMost(n int) int {
	if n < 1 {
		return 0
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

// ZeroPad returns x extended with zeros to the next power of two. When len(x)
// already is a power of two, x itself is returned.
func ZeroPad[T any](x []T) []T {
	n := NextPowerOfTwo(len(x))
	if n == len(x) {
		return x
	}
	out := make([]T, n)
	copy(out, x)
	return out
}

// Package order converts a time-domain envelope into the angle domain using
// a once-per-revolution tachometer.
//
// Each pair of consecutive rising tachometer edges delimits one shaft
// revolution, which is resampled to a fixed number of points. A spectrum of
// the result, computed with the per-revolution sample count as the sample
// rate, has its frequency axis in orders (cycles per revolution), so shaft
// speed variation no longer smears the characteristic lines.
package order

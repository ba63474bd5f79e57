// Package interp provides sampling of uniformly spaced sequences at
// fractional positions.
package interp

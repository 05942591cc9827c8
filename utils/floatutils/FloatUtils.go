// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"
)

// ArgMax returns the index of the maximum value in a slice of float64.
// A value only replaces the current maximum if it exceeds it by more
// than tol, so values within tol of each other resolve to the lowest
// index.
func ArgMax(values []float64, tol float64) int {
	idx := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[idx]+tol {
			idx = i
		}
	}
	return idx
}

// MaxSlice gets the maximum value and indices of the maximum values in
// a slice of float64. Values within tol of the current maximum are
// considered tied with it.
func MaxSlice(values []float64, tol float64) (max float64, indices []int) {
	max, indices = values[0], []int{0}

	for i := 1; i < len(values); i++ {
		value := values[i]
		if value > max+tol {
			max = value
			indices = []int{i}
		} else if math.Abs(value-max) <= tol {
			indices = append(indices, i)
		}
	}
	return
}

// AllFinite returns whether every value is neither NaN nor infinite
func AllFinite(values []float64) bool {
	for _, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
	}
	return true
}

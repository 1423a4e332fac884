// Package testutil provides naive reference implementations and input
// generators for tests.
package testutil

import "math/rand"

// Occurrences returns every start position of pat in text by linear scan,
// sorted ascending. Overlapping occurrences are included.
func Occurrences(text, pat []uint32) []int {
	if len(pat) == 0 || len(pat) > len(text) {
		return nil
	}
	var occ []int
	for i := 0; i+len(pat) <= len(text); i++ {
		match := true
		for j := range pat {
			if text[i+j] != pat[j] {
				match = false
				break
			}
		}
		if match {
			occ = append(occ, i)
		}
	}
	return occ
}

// RandomUnits returns n code units drawn uniformly from [1, sigma].
func RandomUnits(rng *rand.Rand, n, sigma int) []uint32 {
	units := make([]uint32, n)
	for i := range units {
		units[i] = uint32(rng.Intn(sigma)) + 1
	}
	return units
}

// RandomSparseUnits returns n code units drawn from a sparse alphabet whose
// values are spread far apart, to exercise large-alphabet code paths.
func RandomSparseUnits(rng *rand.Rand, n, sigma int) []uint32 {
	units := make([]uint32, n)
	for i := range units {
		units[i] = uint32(rng.Intn(sigma))*10_000_019 + 1
	}
	return units
}

// RandomText returns a random lowercase ASCII string over sigma letters.
func RandomText(rng *rand.Rand, n, sigma int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + rng.Intn(sigma))
	}
	return string(b)
}

// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

// Package sample implements uniform sampling without replacement.
package sample

import (
	"math/rand"
	"slices"
)

// Pick returns up to k elements drawn uniformly without replacement from
// elems. When k meets or exceeds len(elems) the whole set is returned (in
// shuffled order). The input slice is not modified.
func Pick(rng *rand.Rand, elems []string, k int) []string {
	if k <= 0 {
		return nil
	}
	if k > len(elems) {
		k = len(elems)
	}
	picked := slices.Clone(elems)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:k:k]
}

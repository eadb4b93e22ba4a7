// Package random holds the two randomness concerns of the question
// pipeline, kept deliberately separate: a deterministic seeded shuffle
// used to lay out the static pools (safe for golden tests), and a
// non-deterministic sampler used for per-request draws and captcha
// codes. Neither is cryptographic; variety is the requirement.
package random

import (
	"math/rand"
	"sync"
	"time"
)

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Shuffle returns a deterministic permutation of items for a given seed.
// The LCG is re-seeded on every step, so equal (items, seed) pairs always
// produce the same ordering. The input slice is not modified.
func Shuffle[T any](items []T, seed int64) []T {
	out := make([]T, len(items))
	copy(out, items)

	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	for i := len(out) - 1; i > 0; i-- {
		s = (s*lcgMultiplier + lcgIncrement) % lcgModulus
		j := int(s * int64(i+1) / lcgModulus)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NextSeed advances an LCG seed one step. Generators use it to derive
// per-item seeds from content-derived starting values.
func NextSeed(seed int64) int64 {
	s := (seed*lcgMultiplier + lcgIncrement) % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return s
}

var (
	srcMu sync.Mutex
	src   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Intn returns a non-deterministic int in [0, n).
func Intn(n int) int {
	srcMu.Lock()
	defer srcMu.Unlock()
	return src.Intn(n)
}

// Sample draws up to count items from items without replacement within
// this one call. It returns min(count, len(items)) results; a short batch
// is valid and callers must handle it. The source slice is never mutated,
// so repeats across separate calls are expected.
func Sample[T any](items []T, count int) []T {
	if count <= 0 || len(items) == 0 {
		return nil
	}
	if count > len(items) {
		count = len(items)
	}

	picked := make([]T, 0, count)
	seen := make(map[int]struct{}, count)
	for len(picked) < count {
		idx := Intn(len(items))
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		picked = append(picked, items[idx])
	}
	return picked
}

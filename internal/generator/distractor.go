package generator

import (
	"strconv"

	"quizprize-game/internal/random"
)

// offsetRing is the rotating perturbation set used to synthesize numeric
// distractors around a correct answer.
var offsetRing = []int{1, -1, 2, -2, 3, -3, 5, -5, 10, -10}

// numericOptions builds 4 distinct answer options for a numeric answer:
// the correct value plus three perturbed distractors. Perturbations that
// collide with an existing option or go non-positive are rejected; if the
// ring is exhausted a bounded LCG walk supplies the remainder so the pool
// stays deterministic. The returned slice is shuffled with the seed.
func numericOptions(correct int, seed int64) []string {
	used := map[int]struct{}{correct: {}}
	options := []string{strconv.Itoa(correct)}

	start := int(seed) % len(offsetRing)
	if start < 0 {
		start += len(offsetRing)
	}
	for i := 0; i < len(offsetRing) && len(options) < 4; i++ {
		candidate := correct + offsetRing[(start+i)%len(offsetRing)]
		if candidate <= 0 {
			continue
		}
		if _, dup := used[candidate]; dup {
			continue
		}
		used[candidate] = struct{}{}
		options = append(options, strconv.Itoa(candidate))
	}

	// Small answers can exhaust the ring; walk the LCG for more spread.
	walk := seed
	for len(options) < 4 {
		walk = random.NextSeed(walk)
		candidate := correct + int(walk%20) + 11
		if _, dup := used[candidate]; dup {
			continue
		}
		used[candidate] = struct{}{}
		options = append(options, strconv.Itoa(candidate))
	}

	return random.Shuffle(options, seed)
}

// siblingOptions builds 4 unique options for a fact answer, drawing
// distractors from sibling values of the same dataset field. The pool
// walk starts at the entry after the correct one and wraps, skipping
// anything equal to an option already collected.
func siblingOptions(correct string, pool []string, startAt int, seed int64) []string {
	options := []string{correct}
	seen := map[string]struct{}{correct: {}}

	for i := 0; i < len(pool) && len(options) < 4; i++ {
		candidate := pool[(startAt+1+i)%len(pool)]
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		options = append(options, candidate)
	}

	return random.Shuffle(options, seed)
}

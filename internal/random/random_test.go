package random

import "testing"

func TestShuffleDeterministic(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	first := Shuffle(items, 42)
	second := Shuffle(items, 42)

	if len(first) != len(items) {
		t.Fatalf("Expected %d items, got %d", len(items), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Same seed produced different orderings at index %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestShuffleDifferentSeeds(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	a := Shuffle(items, 7)
	b := Shuffle(items, 12345)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("Different seeds produced identical orderings over 50 items")
	}
}

func TestShufflePreservesInput(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	Shuffle(items, 99)

	expected := []string{"a", "b", "c", "d", "e"}
	for i := range items {
		if items[i] != expected[i] {
			t.Fatalf("Shuffle mutated its input at index %d", i)
		}
	}
}

func TestShufflePreservesElements(t *testing.T) {
	items := []int{3, 1, 4, 1, 5, 9, 2, 6}
	out := Shuffle(items, 8)

	counts := map[int]int{}
	for _, v := range items {
		counts[v]++
	}
	for _, v := range out {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			t.Fatalf("Element %d count changed by %d after shuffle", v, c)
		}
	}
}

func TestSampleUnique(t *testing.T) {
	items := []int{10, 20, 30, 40, 50, 60, 70, 80}

	got := Sample(items, 5)
	if len(got) != 5 {
		t.Fatalf("Expected 5 items, got %d", len(got))
	}

	seen := map[int]bool{}
	for _, v := range got {
		if seen[v] {
			t.Fatalf("Duplicate value %d in a single sample", v)
		}
		seen[v] = true
	}
}

func TestSampleShortBatch(t *testing.T) {
	items := []int{1, 2, 3}

	got := Sample(items, 10)
	if len(got) != 3 {
		t.Fatalf("Expected short batch of 3, got %d", len(got))
	}
}

func TestSampleEmptyAndZero(t *testing.T) {
	if got := Sample([]int{}, 5); got != nil {
		t.Fatalf("Expected nil for empty source, got %v", got)
	}
	if got := Sample([]int{1, 2}, 0); got != nil {
		t.Fatalf("Expected nil for zero count, got %v", got)
	}
}

func TestNextSeedStaysInRange(t *testing.T) {
	seed := int64(12345)
	for i := 0; i < 1000; i++ {
		seed = NextSeed(seed)
		if seed < 0 || seed >= lcgModulus {
			t.Fatalf("Seed %d escaped [0, %d) after %d steps", seed, int64(lcgModulus), i+1)
		}
	}
}

package generator

import (
	"fmt"
	"strconv"
	"strings"

	"quizprize-game/internal/models"
)

const puzzleTerms = 5

// PuzzlePool builds number-sequence puzzles with one masked position and
// letter-value cipher puzzles. Answers are always numeric strings and no
// options are attached. The masked index is always >= 2, so the rule can
// be inferred from the first two visible terms.
func PuzzlePool() []models.Question {
	var pool []models.Question

	add := func(text, answer string) {
		pool = append(pool, models.Question{
			ID:            questionID(models.Puzzle, len(pool)+1),
			Category:      models.Puzzle,
			Text:          text,
			CorrectAnswer: answer,
		})
	}

	// Arithmetic sequences: start and difference loops, rotating mask,
	// bounded so the three families together land on the pool target.
	arithmetic := 0
	for start := 2; start <= 21 && arithmetic < 386; start++ {
		for diff := 2; diff <= 9 && arithmetic < 386; diff++ {
			for mask := 2; mask <= 4 && arithmetic < 386; mask++ {
				text, answer := sequencePuzzle(start, func(prev int) int { return prev + diff }, mask)
				add(text, answer)
				arithmetic++
			}
		}
	}

	// Geometric sequences: small starts and ratios keep terms readable.
	for start := 1; start <= 6; start++ {
		for ratio := 2; ratio <= 4; ratio++ {
			for mask := 2; mask <= 4; mask++ {
				text, answer := sequencePuzzle(start, func(prev int) int { return prev * ratio }, mask)
				add(text, answer)
			}
		}
	}

	// Letter ciphers: A=1 .. Z=26, answer is the word's letter sum.
	for _, word := range cipherWords {
		add(fmt.Sprintf("If A=1, B=2 ... Z=26, what is the total value of the word %s?", word),
			strconv.Itoa(CipherValue(word)))
	}

	return pool
}

// sequencePuzzle renders a 5-term sequence with the term at mask replaced
// by "?" and returns the masked value as the answer.
func sequencePuzzle(start int, next func(int) int, mask int) (string, string) {
	terms := make([]int, puzzleTerms)
	terms[0] = start
	for i := 1; i < puzzleTerms; i++ {
		terms[i] = next(terms[i-1])
	}

	rendered := make([]string, puzzleTerms)
	for i, v := range terms {
		if i == mask {
			rendered[i] = "?"
		} else {
			rendered[i] = strconv.Itoa(v)
		}
	}
	text := fmt.Sprintf("Find the missing number: %s", strings.Join(rendered, ", "))
	return text, strconv.Itoa(terms[mask])
}

// CipherValue sums letter positions (A=1) for an uppercase word.
func CipherValue(word string) int {
	total := 0
	for _, r := range word {
		if r >= 'A' && r <= 'Z' {
			total += int(r-'A') + 1
		}
	}
	return total
}

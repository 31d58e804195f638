package service

import (
	"strings"
	"unicode"
)

// AnswerValidator validates player answers with fuzzy matching support.
type AnswerValidator struct {
	threshold float64 // Similarity threshold (0.0 - 1.0)
}

// NewAnswerValidator creates a new AnswerValidator.
func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{
		threshold: 0.8, // 80% similarity required
	}
}

// Validate checks if the player's answer matches the correct answer.
// Case, punctuation, extra whitespace and a leading article are ignored,
// and small typos are tolerated.
func (v *AnswerValidator) Validate(userAnswer, correctAnswer string) bool {
	user := v.normalize(userAnswer)
	correct := v.normalize(correctAnswer)

	if user == "" {
		return false
	}

	// Exact match
	if user == correct {
		return true
	}

	// Fuzzy match using Levenshtein distance
	return v.similarity(user, correct) >= v.threshold
}

// normalize normalizes a string for comparison.
func (v *AnswerValidator) normalize(s string) string {
	s = strings.ToLower(s)

	// Drop punctuation: "Mona Lisa!" and "mona-lisa" compare equal.
	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return ' '
		}
		return r
	}, s)

	words := strings.Fields(s)
	if len(words) > 1 {
		switch words[0] {
		case "the", "a", "an":
			words = words[1:]
		}
	}

	return strings.Join(words, " ")
}

// similarity calculates the similarity between two strings using Levenshtein distance.
func (v *AnswerValidator) similarity(s1, s2 string) float64 {
	distance := levenshteinDistance(s1, s2)
	maxLen := max(len([]rune(s1)), len([]rune(s2)))

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	rows := len(r1) + 1
	cols := len(r2) + 1

	// Two rows instead of the full matrix.
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i < rows; i++ {
		curr[0] = i

		for j := 1; j < cols; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			curr[j] = min(
				curr[j-1]+1,    // Insertion
				prev[j]+1,      // Deletion
				prev[j-1]+cost, // Substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[cols-1]
}

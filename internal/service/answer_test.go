package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerValidator_Validate(t *testing.T) {
	v := NewAnswerValidator()

	tests := []struct {
		name    string
		given   string
		correct string
		want    bool
	}{
		{name: "exact", given: "Agra", correct: "Agra", want: true},
		{name: "case and spacing", given: "  mUHAMMAD   ali ", correct: "Muhammad Ali", want: true},
		{name: "leading article", given: "Liver", correct: "The Liver", want: true},
		{name: "punctuation", given: "edward-scissorhands!", correct: "Edward Scissorhands", want: true},
		{name: "small typo", given: "Alexander Flemming", correct: "Alexander Fleming", want: true},
		{name: "different answer", given: "Amazon", correct: "Lake Victoria", want: false},
		{name: "short answer typo", given: "Two", correct: "One", want: false},
		{name: "blank", given: "   ", correct: "Blood", want: false},
		{name: "article only", given: "the", correct: "The Liver", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.given, tt.correct))
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("scarab", "scarab"))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 5, levenshteinDistance("", "agrax"))
}

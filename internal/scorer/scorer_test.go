package scorer

import (
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestScoreSingleTermLowDF(t *testing.T) {
	got := Score([]string{"hello"}, map[string]int{"hello": 7}, map[string]int{"hello": 3}, 17, DefaultK)
	if !almostEqual(got, 0.56, 0.005) {
		t.Errorf("Score() = %v, want ~0.56", got)
	}
}

func TestScoreSingleTermHighDF(t *testing.T) {
	got := Score([]string{"hello"}, map[string]int{"hello": 25}, map[string]int{"hello": 5}, 175, DefaultK)
	if !almostEqual(got, 0.64, 0.005) {
		t.Errorf("Score() = %v, want ~0.64", got)
	}
}

func TestScoreTwoTerms(t *testing.T) {
	df := map[string]int{"hello": 25, "world": 7}
	tf := map[string]int{"hello": 5, "world": 3}
	got := Score([]string{"hello", "world"}, df, tf, 175, DefaultK)
	if !almostEqual(got, 0.68, 0.005) {
		t.Errorf("Score() = %v, want ~0.68", got)
	}
}

func TestScoreEmptyTermsIsZero(t *testing.T) {
	got := Score(nil, nil, nil, 10, DefaultK)
	if got != 0 {
		t.Errorf("Score() = %v, want 0", got)
	}
}

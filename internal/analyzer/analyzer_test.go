package analyzer

import (
	"reflect"
	"testing"
)

func TestTokenizeHelloWorld(t *testing.T) {
	got := Tokenize("Hello world")
	want := []string{"hello", "world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeSplendidExample(t *testing.T) {
	got := Tokenize("This is a truly splendid example of some tokens. Top notch, really.")
	want := []string{"truly", "splendid", "example", "some", "tokens", "top", "notch", "really"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeInvariants(t *testing.T) {
	tokens := Tokenize("This is a truly splendid example of some tokens. Top notch, really.")
	for _, tok := range tokens {
		if tok == "" {
			t.Errorf("token is empty")
		}
		for _, r := range punctuation {
			if containsRune(tok, r) {
				t.Errorf("token %q contains punctuation %q", tok, r)
			}
		}
		if tok != toLowerASCII(tok) {
			t.Errorf("token %q is not lowercase", tok)
		}
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func TestNgramizeHelloWorld(t *testing.T) {
	got := Ngramize([]string{"hello", "world"})
	want := map[string][]int{
		"hel":   {0},
		"hell":  {0},
		"hello": {0},
		"wor":   {1},
		"worl":  {1},
		"world": {1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ngramize() = %v, want %v", got, want)
	}
}

func TestNgramizeShortTokenDropped(t *testing.T) {
	got := Ngramize([]string{"to", "go"})
	if len(got) != 0 {
		t.Errorf("Ngramize() = %v, want empty (tokens shorter than MinGram emit no terms)", got)
	}
}

func TestNgramizeTermLengthBounds(t *testing.T) {
	got := Ngramize([]string{"extraordinary"})
	for term := range got {
		if len(term) < MinGram || len(term) > MaxGram {
			t.Errorf("term %q has length %d, want within [%d,%d]", term, len(term), MinGram, MaxGram)
		}
	}
}

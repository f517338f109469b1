// Package scorer implements the BM25-style relevance formula used to rank
// documents at query time. The formula is deliberately simpler than classic
// Okapi BM25 — it has a single saturation constant and no length
// normalization term. Scores stay below 1; a query term found in more than
// half of the corpus has a negative IDF and pulls the score below 0.5.
package scorer

import "math"

// DefaultK is the saturation constant used when a caller does not override
// it. The length-normalization offset classic BM25 calls b has no effect in
// this formula and is not exposed as a parameter (see SPEC_FULL.md).
const DefaultK = 1.2

// Score computes the relevance of a document against a query's term set.
// df maps each queried term to its document frequency (how many documents
// in the corpus contain it at all); tf maps each queried term to its term
// frequency within this document; n is the total document count.
func Score(terms []string, df, tf map[string]int, n int, k float64) float64 {
	if len(terms) == 0 {
		return 0
	}

	var total float64
	for _, term := range terms {
		total += contribution(term, df, tf, n, k)
	}

	return 0.5 + total/(2*float64(len(terms)))
}

// contribution computes one query term's contribution to the overall score.
func contribution(term string, df, tf map[string]int, n int, k float64) float64 {
	termDF := df[term]
	termTF := tf[term]
	if termDF == 0 || termTF == 0 {
		return 0
	}

	idf := inverseDocumentFrequency(termDF, n)
	return float64(termTF) * idf / (float64(termTF) + k)
}

// inverseDocumentFrequency computes this formula's IDF term: rarer terms
// across the corpus contribute more to the score than common ones.
func inverseDocumentFrequency(df, n int) float64 {
	return math.Log(float64(n-df+1)/float64(df)) / math.Log(1+float64(n))
}

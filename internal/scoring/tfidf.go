package scoring

import (
	"fmt"
	"math"
)

// vector is a sparse term-weight vector indexed by vocabulary position.
type vector map[int]float64

// vectorize builds TF-IDF vectors for the given documents over a vocabulary
// derived from those documents alone. The vector space is strictly local to
// one scoring call and is never cached or reused. Returns an error when the
// corpus reduces to an empty vocabulary after stop-word removal.
func vectorize(docs []string) ([]vector, error) {
	tokenized := make([][]string, len(docs))
	vocab := make(map[string]int)
	docFreq := make(map[int]int)

	for i, doc := range docs {
		tokens := tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[int]bool)
		for _, tok := range tokens {
			idx, ok := vocab[tok]
			if !ok {
				idx = len(vocab)
				vocab[tok] = idx
			}
			if !seen[idx] {
				seen[idx] = true
				docFreq[idx]++
			}
		}
	}

	if len(vocab) == 0 {
		return nil, fmt.Errorf("empty vocabulary: all documents reduced to stop words")
	}

	// Smoothed inverse document frequency: idf = ln((1+n)/(1+df)) + 1.
	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for idx, df := range docFreq {
		idf[idx] = math.Log((1+n)/(1+float64(df))) + 1
	}

	vectors := make([]vector, len(docs))
	for i, tokens := range tokenized {
		counts := make(map[int]int)
		for _, tok := range tokens {
			counts[vocab[tok]]++
		}

		vec := make(vector, len(counts))
		var norm float64
		for idx, count := range counts {
			w := float64(count) * idf[idx]
			vec[idx] = w
			norm += w * w
		}

		// L2-normalize so cosine similarity reduces to a dot product.
		if norm > 0 {
			norm = math.Sqrt(norm)
			for idx := range vec {
				vec[idx] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// cosine returns the cosine similarity of two L2-normalized vectors. With
// non-negative weights the result is in [0, 1].
func cosine(a, b vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		dot += w * b[idx]
	}
	return dot
}

package search

import "sort"

// Candidate is one scored-against chunk
type Candidate struct {
	ChunkID    uint
	DocumentID uint
	ChunkIndex int
	Content    string
	Embedding  []float32
}

// Result is a candidate with its similarity score
type Result struct {
	Candidate
	Score float32
}

// Rank scores each candidate by dot product against the query vector and
// returns at most limit results in descending score order. Ties keep input
// order. Embeddings are stored normalized, so dot product is cosine
// similarity. Empty input yields empty output.
func Rank(query []float32, candidates []Candidate, limit int) []Result {
	if len(candidates) == 0 || limit <= 0 {
		return []Result{}
	}

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, Result{Candidate: c, Score: dot(query, c.Embedding)})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

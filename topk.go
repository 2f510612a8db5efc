package vecspace

import (
	"fmt"

	"github.com/hupe1980/vecspace/distance"
	"github.com/hupe1980/vecspace/internal/queue"
)

// SearchResult pairs a stored vector with the score the search assigned
// to it.
type SearchResult struct {
	// Index is the vector's position in the Space.
	Index int
	// Score is the value returned by the scoring function.
	Score float32
	// Vector is a borrowed view into the Space.
	Vector Ref
}

// ScoreFunc rates a stored vector. Higher is better.
type ScoreFunc func(v Ref) float32

// TopK scans every vector exactly once and returns the k highest-scoring
// ones in descending score order, using a bounded priority queue so the
// auxiliary space stays O(k) no matter how large the Space is. For
// k >= Len all vectors are returned, sorted.
//
// Ties are broken by insertion order: of two vectors with equal score
// the earlier one ranks first, which keeps results reproducible across
// runs.
func (s *Space) TopK(k int, score ScoreFunc) []SearchResult {
	if k <= 0 || s.IsEmpty() {
		return nil
	}
	if k > s.Len() {
		k = s.Len()
	}

	pq := queue.NewMin(k)

	for i, v := range s.All() {
		sc := score(v)

		if pq.Len() < k {
			pq.PushItem(queue.Item{Index: i, Score: sc})
			continue
		}

		// The root is the worst candidate kept so far. A newcomer with an
		// equal score never displaces it, so earlier vectors win ties.
		if worst, _ := pq.TopItem(); sc > worst.Score {
			pq.PopItem()
			pq.PushItem(queue.Item{Index: i, Score: sc})
		}
	}

	results := make([]SearchResult, pq.Len())
	for i := pq.Len() - 1; i >= 0; i-- {
		item, _ := pq.PopItem()
		v, _ := s.Get(item.Index)
		results[i] = SearchResult{Index: item.Index, Score: item.Score, Vector: v}
	}

	return results
}

// TopKCosine is TopK with cosine similarity against query as the scoring
// function. Panics if the query's dimension differs from the Space's.
func (s *Space) TopKCosine(k int, query Vector) []SearchResult {
	return s.topKSimilarity(k, query, distance.Cosine)
}

// TopKMetric is TopK scored by the given similarity metric against query.
// Panics if the query's dimension differs from the Space's. Returns an
// error only for an unsupported metric.
func (s *Space) TopKMetric(k int, m distance.Metric, query Vector) ([]SearchResult, error) {
	fn, err := distance.Provider(m)
	if err != nil {
		return nil, err
	}

	return s.topKSimilarity(k, query, fn), nil
}

func (s *Space) topKSimilarity(k int, query Vector, fn distance.Func) []SearchResult {
	if s.IsEmpty() {
		return nil
	}

	q := query.Data()
	if len(q) != s.dim {
		panic(fmt.Sprintf("vecspace: search over mismatched dimensions %d and %d", len(q), s.dim))
	}

	return s.TopK(k, func(v Ref) float32 {
		return fn(q, v.Data())
	})
}

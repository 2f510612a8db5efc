// Package vecspace provides a memory-optimized store for fixed-dimension
// word embedding vectors, together with exact top-k similarity search.
//
// A Space holds millions of high-dimensional vectors in a single flat
// float32 buffer, one contiguous segment per record, which keeps the
// per-vector overhead at a minimum and makes sequential scans cache
// friendly. Vectors flow out of the Space as borrowed views (Ref) whose
// lifetime is tied to the Space; ephemeral computed results (for example
// a query composed from multiple words) are Owned and carry their own
// storage.
//
// # Quick Start
//
//	space, _ := word2vec.NewParser(func(o *word2vec.ParserOptions) {
//	    o.IndexTerms = true
//	}).ParseFile("./embeddings.vec")
//
//	query, _ := space.FindTerm("vector")
//	for _, r := range space.TopKCosine(10, query) {
//	    fmt.Println(r.Vector.Term(), r.Score)
//	}
//
// Loading and serializing the word2vec interchange format lives in the
// word2vec subpackage; raw float32 kernels live in the distance
// subpackage.
//
// A Space provides no internal synchronization. Build it from a single
// goroutine, then share it read-only.
package vecspace

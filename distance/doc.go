// Package distance provides float32 vector kernels: dot product,
// Euclidean norm, squared L2 distance and cosine similarity.
//
// The functions operate on raw slices and trust the caller on lengths;
// passing slices of different lengths is a bug.
package distance

// Package blobstore abstracts where embedding files live: a local
// directory, process memory (tests) or an S3-compatible object store.
//
// The word2vec codec consumes these stores to parse from and export to
// remote locations without materializing the file in memory.
package blobstore

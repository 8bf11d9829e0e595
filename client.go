package main

import (
	"io"
)

// BucketClient is the destination capability: streamed uploads for file
// content plus small-object get/put for the sync marker.
type BucketClient interface {
	Upload(bucket string, key string, body io.Reader, metadata map[string]string) error
	GetObject(bucket string, key string) ([]byte, error)
	PutObject(bucket string, key string, body []byte) error
}

// SourceClient is the source capability: one recursive listing per run plus
// streamed reads of individual files.
type SourceClient interface {
	remoteFS
	Open(filePath string) (io.ReadCloser, error)
}

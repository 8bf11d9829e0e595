package main

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound is returned by BucketClient.GetObject when the requested
// key does not exist. For the sync marker this is the "no prior sync" state,
// not a failure.
var ErrObjectNotFound = errors.New("object not found")

// ConnectionError means the source endpoint could not be reached or refused
// authentication. Nothing was transferred and the marker is untouched.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %s", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ListingError means a directory could not be read mid-walk. The whole
// listing is discarded, since a partial listing can never be treated as
// complete.
type ListingError struct {
	Path string
	Err  error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("listing %s failed: %s", e.Path, e.Err)
}

func (e *ListingError) Unwrap() error { return e.Err }

// TransferError is a per-file failure: a read error at the source or a write
// error at the destination. It never aborts sibling transfers, but any
// recorded TransferError blocks the marker commit.
type TransferError struct {
	Path string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %s failed: %s", e.Path, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// MarkerWriteError means every transfer succeeded but the new watermark could
// not be persisted. The next run re-transfers the same files, which is
// redundant but safe since uploads are whole-object overwrites.
type MarkerWriteError struct {
	Key string
	Err error
}

func (e *MarkerWriteError) Error() string {
	return fmt.Sprintf("writing sync marker %s failed: %s", e.Key, e.Err)
}

func (e *MarkerWriteError) Unwrap() error { return e.Err }

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// MarkerStore persists the incremental sync watermark as a small object in
// the destination bucket. The object body is a decimal epoch-seconds
// timestamp; a missing object means no prior successful sync.
type MarkerStore struct {
	client BucketClient
	bucket string
	key    string
}

func NewMarkerStore(client BucketClient, bucket, key string) *MarkerStore {
	return &MarkerStore{client: client, bucket: bucket, key: key}
}

// Enabled reports whether a marker key is configured. Without one every run
// is a full sync and no watermark is read or written.
func (m *MarkerStore) Enabled() bool {
	return m.key != ""
}

func (m *MarkerStore) Read() (*time.Time, error) {
	if !m.Enabled() {
		return nil, nil
	}
	body, getErr := m.client.GetObject(m.bucket, m.key)
	if errors.Is(getErr, ErrObjectNotFound) {
		log.Warn(fmt.Sprintf("Sync marker %s not found, treating as first run", m.key))
		return nil, nil
	}
	if getErr != nil {
		return nil, fmt.Errorf("reading sync marker %s: %w", m.key, getErr)
	}

	epoch, parseErr := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if parseErr != nil {
		return nil, fmt.Errorf("malformed sync marker %s: %w", m.key, parseErr)
	}
	marker := time.Unix(epoch, 0).UTC()
	return &marker, nil
}

func (m *MarkerStore) Write(marker time.Time) error {
	body := []byte(strconv.FormatInt(marker.Unix(), 10))
	if putErr := m.client.PutObject(m.bucket, m.key, body); putErr != nil {
		return &MarkerWriteError{Key: m.key, Err: putErr}
	}
	return nil
}

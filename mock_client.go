package main

import (
	"io"
	"io/ioutil"
	"sync"
)

type MockUpload struct {
	Bucket   string
	Key      string
	Body     []byte
	Metadata map[string]string
}

type MockPut struct {
	Bucket string
	Key    string
	Body   []byte
}

// MockBucketClient records every capability call and serves small objects
// from an in-memory map. Failures are injected per upload key or globally
// for marker puts.
type MockBucketClient struct {
	Uploads    []MockUpload
	Puts       []MockPut
	objects    map[string][]byte
	uploadErrs map[string]error
	putErr     error
	lock       sync.Mutex
}

func NewMockBucketClient() *MockBucketClient {
	return &MockBucketClient{
		Uploads:    make([]MockUpload, 0),
		Puts:       make([]MockPut, 0),
		objects:    make(map[string][]byte),
		uploadErrs: make(map[string]error),
	}
}

func (c *MockBucketClient) Upload(bucket, key string, body io.Reader, metadata map[string]string) error {
	data, readErr := ioutil.ReadAll(body)
	if readErr != nil {
		return readErr
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	if uploadErr, ok := c.uploadErrs[key]; ok {
		return uploadErr
	}
	c.Uploads = append(c.Uploads, MockUpload{Bucket: bucket, Key: key, Body: data, Metadata: metadata})
	return nil
}

func (c *MockBucketClient) GetObject(bucket, key string) ([]byte, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	body, ok := c.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return body, nil
}

func (c *MockBucketClient) PutObject(bucket, key string, body []byte) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.putErr != nil {
		return c.putErr
	}
	c.objects[key] = body
	c.Puts = append(c.Puts, MockPut{Bucket: bucket, Key: key, Body: body})
	return nil
}

// SetObject seeds a small object, e.g. a pre-existing sync marker.
func (c *MockBucketClient) SetObject(key string, body []byte) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.objects[key] = body
}

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/ioutil"

	"cloud.google.com/go/storage"
)

type GCSClient struct {
	Client *storage.Client
}

func (s *GCSClient) Upload(bucketName, key string, body io.Reader, metadata map[string]string) error {
	object := s.Client.Bucket(bucketName).Object(key)
	objWriter := object.NewWriter(context.TODO())
	objWriter.Metadata = metadata
	if _, uploadErr := io.Copy(objWriter, body); uploadErr != nil {
		objWriter.Close()
		return uploadErr
	}

	return objWriter.Close()
}

func (s *GCSClient) GetObject(bucketName, key string) ([]byte, error) {
	objReader, readErr := s.Client.Bucket(bucketName).Object(key).NewReader(context.TODO())
	if errors.Is(readErr, storage.ErrObjectNotExist) {
		return nil, ErrObjectNotFound
	}
	if readErr != nil {
		return nil, readErr
	}
	defer objReader.Close()

	return ioutil.ReadAll(objReader)
}

func (s *GCSClient) PutObject(bucketName, key string, body []byte) error {
	return s.Upload(bucketName, key, bytes.NewReader(body), nil)
}

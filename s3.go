package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/ioutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3Client struct {
	Client *s3.Client
}

func (s *S3Client) Upload(bucketName, key string, body io.Reader, metadata map[string]string) error {
	uploader := manager.NewUploader(s.Client)
	_, putErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:   aws.String(bucketName),
		Key:      aws.String(key),
		Body:     body,
		Metadata: metadata,
	})

	return putErr
}

func (s *S3Client) GetObject(bucketName, key string) ([]byte, error) {
	getResp, getErr := s.Client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if getErr != nil {
		var notFound *types.NoSuchKey
		if errors.As(getErr, &notFound) {
			return nil, ErrObjectNotFound
		}
		return nil, getErr
	}
	defer getResp.Body.Close()

	return ioutil.ReadAll(getResp.Body)
}

func (s *S3Client) PutObject(bucketName, key string, body []byte) error {
	_, putErr := s.Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	})

	return putErr
}

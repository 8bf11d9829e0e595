package main

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type AppConfig struct {
	Provider    string `default:"aws"`
	AWSRegion   string
	IAMProfile  string
	EndpointURL string `env:"S3_SFTP_SYNC__S3_ENDPOINT_URL"`
	SNSTopic    string

	SFTP SFTPConfig `required:"true"`
	Sync SyncConfig `required:"true"`
}

type SFTPConfig struct {
	Hostname string `required:"true" env:"S3_SFTP_SYNC__SFTP_HOSTNAME"`
	Port     int    `default:"22" env:"S3_SFTP_SYNC__SFTP_PORT"`
	Username string `required:"true" env:"S3_SFTP_SYNC__SFTP_USERNAME"`
	Password string `env:"S3_SFTP_SYNC__SFTP_PASSWORD"`
	KeyFile  string
}

type SyncConfig struct {
	SourceFolder      string `default:"."`
	DestinationBucket string `required:"true" env:"S3_SFTP_SYNC__S3_BUCKET"`
	KeyPrefix         string `env:"S3_SFTP_SYNC__S3_KEY_PREFIX"`
	MarkerKey         string `env:"S3_SFTP_SYNC__SFTP_LAST_MODIFIED_S3_KEY"`
	Concurrency       int    `default:"1"`
	FollowSymlinks    bool
	Exclude           []string
}

func (c AppConfig) ClientFromConfig() (BucketClient, error) {
	var bucketClient BucketClient

	switch c.Provider {
	case "aws":
		loadOpts := []func(*config.LoadOptions) error{
			config.WithSharedConfigProfile(c.IAMProfile),
			config.WithRegion(c.AWSRegion),
		}
		if c.EndpointURL != "" {
			resolver := aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{URL: c.EndpointURL}, nil
				})
			loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
		}
		cfg, err := config.LoadDefaultConfig(context.TODO(), loadOpts...)
		if err != nil {
			return bucketClient, fmt.Errorf("Error creating s3 client: %+v\n", err)
		}
		awsS3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
			// MinIO and friends want path style addressing
			o.UsePathStyle = c.EndpointURL != ""
		})
		bucketClient = &S3Client{Client: awsS3Client}
	case "gcs":
		gcsClient, err := storage.NewClient(context.TODO())
		if err != nil {
			return bucketClient, fmt.Errorf("Error creating gcs client: %+v\n", err)
		}
		bucketClient = &GCSClient{Client: gcsClient}
	default:
		return bucketClient, fmt.Errorf("Unknown cloud provider: %s", c.Provider)
	}

	return bucketClient, nil
}

func (c AppConfig) ConfigStringArray() []string {
	configStrArr := make([]string, 0)
	configStrArr = append(configStrArr, fmt.Sprintf("  - Provider: %s", c.Provider))
	configStrArr = append(configStrArr, fmt.Sprintf("  - AWSRegion: %s", c.AWSRegion))
	configStrArr = append(configStrArr, fmt.Sprintf("  - IAMProfile: %s", c.IAMProfile))
	configStrArr = append(configStrArr, fmt.Sprintf("  - SFTP: %s@%s:%d", c.SFTP.Username, c.SFTP.Hostname, c.SFTP.Port))
	configStrArr = append(configStrArr, fmt.Sprintf("  - SourceFolder: %s", c.Sync.SourceFolder))
	configStrArr = append(configStrArr, fmt.Sprintf("  - DestinationBucket: %s", c.Sync.DestinationBucket))
	configStrArr = append(configStrArr, fmt.Sprintf("  - KeyPrefix: %s", c.Sync.KeyPrefix))
	configStrArr = append(configStrArr, fmt.Sprintf("  - MarkerKey: %s", c.Sync.MarkerKey))
	configStrArr = append(configStrArr, fmt.Sprintf("  - Concurrent Uploads: %d", c.Sync.Concurrency))

	if c.SNSTopic != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - SNSTopic: %s", c.SNSTopic))
	}

	return configStrArr
}

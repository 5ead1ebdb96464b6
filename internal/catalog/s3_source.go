package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"fitforge/plan-generator/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the details for an S3-hosted dataset object.
type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	ObjectKey       string
}

// s3Source fetches a JSON dataset object from an S3-compatible bucket once
// at startup.
type s3Source struct {
	cfg S3Config
}

// NewS3Source returns a Source reading the dataset from object storage.
func NewS3Source(cfg S3Config) Source {
	return s3Source{cfg: cfg}
}

func (s s3Source) Load(ctx context.Context) (*Catalog, error) {
	// Custom resolver for S3-compatible endpoints (MinIO, DigitalOcean Spaces).
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if s.cfg.Endpoint != "" {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           s.cfg.Endpoint,
				SigningRegion: s.cfg.Region,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx,
		awsCfg.WithRegion(s.cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.cfg.AccessKeyID, s.cfg.SecretAccessKey, "")),
		awsCfg.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS SDK config: %w", err)
	}

	// Path-style addressing is required by most S3-compatible services.
	client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.BucketName),
		Key:    aws.String(s.cfg.ObjectKey),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch catalog object %s/%s: %w", s.cfg.BucketName, s.cfg.ObjectKey, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog object body: %w", err)
	}

	var entries []domain.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog object %s: %w", s.cfg.ObjectKey, err)
	}

	log.Printf("INFO: Loaded %d catalog entries from s3 bucket %s", len(entries), s.cfg.BucketName)
	return New(entries)
}

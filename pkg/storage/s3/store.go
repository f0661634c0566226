// Package s3 implements a distribution target on an S3 bucket.
package s3

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/oceanbound/marlin/pkg/storage"
)

const pageSize = 1000

// Option configures the store
type Option func(*s3FS)

// Bucket sets the target bucket
func Bucket(bucket string) Option {
	return func(fs *s3FS) {
		fs.bucket = bucket
	}
}

// Prefix roots all keys under a bucket prefix
func Prefix(prefix string) Option {
	return func(fs *s3FS) {
		fs.prefix = strings.Trim(prefix, "/")
	}
}

// AWSConfig overrides the AWS client configuration
func AWSConfig(cfg *aws.Config) Option {
	return func(fs *s3FS) {
		fs.awsConfig = cfg
	}
}

// New creates an S3 backed store
func New(option Option, options ...Option) storage.Store {
	fs := new(s3FS)
	option(fs)
	for _, apply := range options {
		apply(fs)
	}

	client := awss3.New(session.Must(session.NewSession(fs.awsConfig)))
	fs.s3 = client
	fs.uploader = s3manager.NewUploaderWithClient(client)
	return fs
}

type s3FS struct {
	bucket    string
	prefix    string
	awsConfig *aws.Config
	s3        s3iface.S3API
	uploader  *s3manager.Uploader
}

func (s *s3FS) String() string {
	return "s3@" + path.Join(s.bucket, s.prefix)
}

func (s *s3FS) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

func (s *s3FS) Has(ctx context.Context, key string) (bool, error) {
	_, err := s.s3.HeadObjectWithContext(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(key)),
	})
	if err != nil {
		if rerr, ok := err.(awserr.RequestFailure); ok && rerr.StatusCode() == 404 {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *s3FS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.s3.GetObjectWithContext(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(key)),
	})
	if err != nil {
		if rerr, ok := err.(awserr.RequestFailure); ok && rerr.StatusCode() == 404 {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return obj.Body, nil
}

func (s *s3FS) Put(ctx context.Context, key string, rdr io.Reader) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(key)),
		Body:   rdr,
	})
	return err
}

func (s *s3FS) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0, pageSize)
	full := s.key(prefix)
	err := s.s3.ListObjectsV2PagesWithContext(ctx, &awss3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(full),
		MaxKeys: aws.Int64(pageSize),
	}, func(page *awss3.ListObjectsV2Output, _ bool) bool {
		for _, obj := range page.Contents {
			key := aws.StringValue(obj.Key)
			if s.prefix != "" {
				key = strings.TrimPrefix(key, s.prefix+"/")
			}
			keys = append(keys, key)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

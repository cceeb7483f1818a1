package aws

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/viper"
)

// Upload stores an object under key and returns its public URL.
func (c *S3Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := c.C.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      c.Bucket,
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object, %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		*c.Bucket, viper.GetString("storage.s3.region"), key), nil
}

// Delete removes an object. Missing keys aren't treated as errors.
func (c *S3Client) Delete(ctx context.Context, key string) error {
	_, err := c.C.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: c.Bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object, %w", err)
	}

	return nil
}

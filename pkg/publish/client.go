package publish

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ClientOptions configures NewClient.
type ClientOptions struct {
	Region    string
	Endpoint  string
	PathStyle bool

	// Credentials defaults to EnvCredentials.
	Credentials aws.CredentialsProvider
}

// NewClient builds an S3 client from opts.
func NewClient(opts ClientOptions) *s3.Client {
	creds := opts.Credentials
	if creds == nil {
		creds = EnvCredentials()
	}
	o := s3.Options{
		Region:       opts.Region,
		Credentials:  aws.NewCredentialsCache(creds),
		UsePathStyle: opts.PathStyle,
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
	}
	return s3.New(o)
}

// EnvCredentials reads the standard AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables on every retrieve.
func EnvCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "Environment",
		}
		if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
			return aws.Credentials{}, ErrNoCredentials
		}
		return creds, nil
	})
}

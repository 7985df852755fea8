// Package images fetches league artwork (logos, banners, award art) from
// R2-compatible object storage and encodes it for inline display.
package images

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/fantasysyndicate/league-data/internal/config"
)

// ErrNotFound means the object does not exist in the bucket. A missing
// image is a user-visible notice, never a server failure.
var ErrNotFound = errors.New("image not found")

// Service reads objects from the league's R2 bucket.
type Service struct {
	client *s3.Client
	bucket string
	dir    string
}

// New creates an image service. Returns nil (disabled) when object storage
// is not configured, matching how the rest of the app treats optional
// integrations.
func New(ctx context.Context, cfg *config.Config) (*Service, error) {
	if !cfg.R2Configured() {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.R2Endpoint)
		o.UsePathStyle = true
	})

	return &Service{client: client, bucket: cfg.R2Bucket, dir: cfg.R2Dir}, nil
}

// ObjectKey builds the bucket key for an artwork filename.
func (s *Service) ObjectKey(name string) string {
	if s.dir == "" {
		return name
	}
	return s.dir + "/" + name
}

// DataURI fetches an object and returns it as a data:image/png base64 URI,
// the form the dashboard embeds directly in <img> tags.
func (s *Service) DataURI(ctx context.Context, name string) (string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.ObjectKey(name)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get object %q: %w", name, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("read object %q: %w", name, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// awardImages maps award IDs to their artwork filenames in the bucket.
var awardImages = map[int]string{
	1:  "champion.png",
	2:  "runnerup.png",
	3:  "reg_season_champ.png",
	4:  "division_champ.png",
	5:  "mvp.png",
	6:  "cy_young.png",
	7:  "hi_score.png",
	8:  "SOTY.png",
	9:  "toy.png",
	10: "poop.png",
	11: "hotdog.png",
}

// AwardImage returns the artwork filename for an award ID.
func AwardImage(awardID int) (string, bool) {
	name, ok := awardImages[awardID]
	return name, ok
}

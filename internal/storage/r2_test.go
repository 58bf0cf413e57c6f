package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body string
	err  error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.in = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func TestUpload(t *testing.T) {
	fake := &fakeS3{}
	r := newR2Client(fake, "menu-images", "https://cdn.aufburger.com/")

	url, err := r.Upload(context.Background(), "products/1/a.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.aufburger.com/products/1/a.png", url)
	assert.Equal(t, "menu-images", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "products/1/a.png", aws.ToString(fake.in.Key))
	assert.Equal(t, "image/png", aws.ToString(fake.in.ContentType))
	assert.Equal(t, "png-bytes", fake.body)
}

func TestUpload_Error(t *testing.T) {
	r := newR2Client(&fakeS3{err: errors.New("denied")}, "menu-images", "")

	_, err := r.Upload(context.Background(), "k", strings.NewReader(""), "")
	assert.Error(t, err)
}

func TestPublicURL_FallsBackToBucketHost(t *testing.T) {
	r := newR2Client(&fakeS3{}, "menu-images", "")
	assert.Equal(t, "https://menu-images/products/2/x.webp", r.PublicURL("products/2/x.webp"))
}

func TestNewR2Client_RequiresBucket(t *testing.T) {
	_, err := NewR2Client(context.Background(), Options{})
	assert.ErrorIs(t, err, ErrMissingBucket)
}

package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"estimatepro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.body = b
	return &s3.PutObjectOutput{}, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestOptimizePhoto_DownscalesLargeImages(t *testing.T) {
	out, err := OptimizePhoto(pngBytes(t, 3200, 800))
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, photoMaxDimension, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestOptimizePhoto_InvalidData(t *testing.T) {
	_, err := OptimizePhoto([]byte("not an image"))
	assert.Error(t, err)
}

func TestS3PhotoStorage_SaveImage(t *testing.T) {
	fake := &fakeS3{}
	store := NewS3PhotoStorage(fake, "photos")

	key, err := store.Save(context.Background(), "b-1", "l-1", interfaces.Photo{
		Filename:    "shower.PNG",
		ContentType: "image/png",
		Data:        pngBytes(t, 40, 20),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "leads/b-1/l-1/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Equal(t, "photos", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "image/jpeg", aws.ToString(fake.in.ContentType))
	assert.NotEmpty(t, fake.body)
}

func TestS3PhotoStorage_SaveKeepsUnsupportedFormats(t *testing.T) {
	fake := &fakeS3{}
	store := NewS3PhotoStorage(fake, "photos")

	raw := []byte("heic-bytes")
	key, err := store.Save(context.Background(), "b-1", "l-1", interfaces.Photo{
		Filename:    "vanity.HEIC",
		ContentType: "image/heic",
		Data:        raw,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(key, ".heic"))
	assert.Equal(t, "image/heic", aws.ToString(fake.in.ContentType))
	assert.Equal(t, raw, fake.body)
}

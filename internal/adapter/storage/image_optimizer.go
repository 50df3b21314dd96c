package storage

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	photoMaxDimension = 1600
	photoJPEGQuality  = 80
)

// optimizablePhoto reports whether the content type can be decoded by imaging.
func optimizablePhoto(contentType string) bool {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif":
		return true
	}
	return false
}

// OptimizePhoto downsizes an image to photoMaxDimension on its longer side and
// re-encodes it as JPEG. EXIF orientation is applied before resizing.
func OptimizePhoto(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var out image.Image = img
	b := img.Bounds()
	if b.Dx() > photoMaxDimension || b.Dy() > photoMaxDimension {
		out = imaging.Fit(img, photoMaxDimension, photoMaxDimension, imaging.Lanczos)
		zap.S().Debugf("[survey][storage] resized photo %dx%d -> %dx%d", b.Dx(), b.Dy(), out.Bounds().Dx(), out.Bounds().Dy())
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(photoJPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

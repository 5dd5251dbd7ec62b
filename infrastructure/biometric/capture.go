package biometric

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"certverify.io/application/utils"
	"certverify.io/infrastructure/logger"
)

// Source is a capture device or upload that yields one image. It is acquired
// for a single capture and released afterwards, whatever the outcome.
type Source interface {
	Acquire(ctx context.Context) (image.Image, error)
	Release()
}

// Capture acquires src, extracts a descriptor from the image and releases src.
func Capture(ctx context.Context, src Source) (Descriptor, error) {
	defer src.Release()
	img, err := src.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Extract(PixelsFromImage(img)), nil
}

// CaptureForEnrollment is Capture but refuses the neutral fallback descriptor,
// which would match any other degenerate capture.
func CaptureForEnrollment(ctx context.Context, src Source) (Descriptor, error) {
	d, err := Capture(ctx, src)
	if err != nil {
		return nil, err
	}
	if IsNeutral(d) {
		return nil, ErrDegenerateDescriptor
	}
	return d, nil
}

// UploadSource decodes a base64 (optionally data URL) encoded image.
type UploadSource struct {
	Encoded string
	img     image.Image
}

func NewUploadSource(encoded string) *UploadSource {
	return &UploadSource{Encoded: encoded}
}

func (u *UploadSource) Acquire(ctx context.Context) (image.Image, error) {
	if u.Encoded == "" {
		return nil, errors.New("no image uploaded")
	}
	img, format, err := utils.DecodeBase64Image(u.Encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding uploaded image: %w", err)
	}
	logger.Info("uploaded capture decoded", logger.LoggerOptions{
		Key:  "format",
		Data: format,
	})
	u.img = img
	return img, nil
}

func (u *UploadSource) Release() {
	u.img = nil
	u.Encoded = ""
}

// FileSource reads an image file from disk.
type FileSource struct {
	Path string
	file *os.File
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Acquire(ctx context.Context) (image.Image, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	f.file = file
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.Path, err)
	}
	return img, nil
}

func (f *FileSource) Release() {
	if f.file != nil {
		f.file.Close()
		f.file = nil
	}
}

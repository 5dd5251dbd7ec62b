package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	_ "golang.org/x/image/webp"
)

// MaxImageDimension caps the width and height of decoded uploads.
const MaxImageDimension = 4096

var ErrImageTooLarge = fmt.Errorf("image exceeds %dx%d pixels", MaxImageDimension, MaxImageDimension)

func GenerateUULDString() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
}

// GenerateUUIDString returns a random v4 UUID.
func GenerateUUIDString() string {
	return uuid.NewString()
}

func HasItemString(arr *[]string, target string) bool {
	for _, v := range *arr {
		if v == target {
			return true
		}
	}
	return false
}

// DecodeBase64Image decodes a base64 image, with or without a data URL prefix,
// and returns the image with its format name.
func DecodeBase64Image(encoded string) (image.Image, string, error) {
	if encoded == "" {
		return nil, "", errors.New("empty image payload")
	}
	if strings.HasPrefix(encoded, "data:") {
		parts := strings.SplitN(encoded, ",", 2)
		if len(parts) != 2 {
			return nil, "", errors.New("invalid data URL format")
		}
		encoded = parts[1]
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(strings.TrimSpace(encoded))
		if err != nil {
			return nil, "", err
		}
	}
	config, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, "", err
	}
	if config.Width > MaxImageDimension || config.Height > MaxImageDimension {
		return nil, "", ErrImageTooLarge
	}
	return image.Decode(bytes.NewReader(raw))
}

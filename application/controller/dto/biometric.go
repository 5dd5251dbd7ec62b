package dto

import (
	"errors"
	"fmt"
	"strings"
)

type EnrollBiometricDTO struct {
	FaceDescriptor []any   `json:"faceDescriptor"`
	FaceImage      *string `json:"faceImage"`
	Replace        bool    `json:"replace"`
}

type ExtractDescriptorDTO struct {
	FaceImage string `json:"faceImage" validate:"required"`
}

type DescriptorResponse struct {
	Descriptor []float64 `json:"descriptor"`
	Length     int       `json:"length"`
	Neutral    bool      `json:"neutral"`
}

type EnrollmentResponse struct {
	Enrolled         int  `json:"enrolled"`
	BiometricEnabled bool `json:"biometricEnabled"`
}

// ValidateEnrollBiometricDTO checks that exactly one capture is supplied.
func ValidateEnrollBiometricDTO(req *EnrollBiometricDTO) error {
	if req == nil {
		return errors.New("request cannot be nil")
	}
	hasImage := req.FaceImage != nil && *req.FaceImage != ""
	hasDescriptor := len(req.FaceDescriptor) > 0
	if hasImage == hasDescriptor {
		return errors.New("provide either faceImage or faceDescriptor")
	}
	if hasImage {
		return ValidateImageInput(*req.FaceImage, "faceImage")
	}
	return nil
}

// ValidateImageInput rejects inputs that cannot be a base64 image.
func ValidateImageInput(image, fieldName string) error {
	if image == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}

	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return fmt.Errorf("%s must be base64 encoded, URLs are not fetched", fieldName)
	}

	if strings.HasPrefix(image, "data:") {
		parts := strings.SplitN(image, ",", 2)
		if len(parts) != 2 || !strings.Contains(parts[0], ";base64") {
			return fmt.Errorf("%s invalid data URL format", fieldName)
		}
		image = parts[1]
	}

	if len(image) > 14_000_000 { // ~10MB decoded
		return fmt.Errorf("%s too large (max ~10MB)", fieldName)
	}

	if len(image) < 16 {
		return fmt.Errorf("%s too small to be an image", fieldName)
	}

	return nil
}

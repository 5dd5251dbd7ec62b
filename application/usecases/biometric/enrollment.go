package biometric_usecases

import (
	"context"
	"errors"
	"fmt"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/application/repository"
	"certverify.io/application/utils"
	"certverify.io/infrastructure/biometric"
	"certverify.io/infrastructure/logger"
)

var ErrTooManyDescriptors = fmt.Errorf("at most %d face captures can be enrolled", constants.MAX_ENROLLED_DESCRIPTORS)

// BuildEnrollment validates client descriptors and extracts image captures
// into enrollment descriptors, in the order given. Neutral descriptors are
// refused since any other degenerate capture would match them.
func BuildEnrollment(ctx context.Context, svc biometric.BiometricServiceType, descriptors [][]any, images []string) ([]biometric.Descriptor, error) {
	if len(descriptors)+len(images) > constants.MAX_ENROLLED_DESCRIPTORS {
		return nil, ErrTooManyDescriptors
	}
	out := make([]biometric.Descriptor, 0, len(descriptors)+len(images))
	for i, raw := range descriptors {
		d, err := biometric.ParseCandidate(raw)
		if err != nil {
			return nil, fmt.Errorf("faceDescriptors[%d]: %w", i, err)
		}
		if biometric.IsNeutral(d) {
			return nil, fmt.Errorf("faceDescriptors[%d]: %w", i, biometric.ErrDegenerateDescriptor)
		}
		out = append(out, d)
	}
	for i, img := range images {
		if err := dto.ValidateImageInput(img, fmt.Sprintf("faceImages[%d]", i)); err != nil {
			return nil, err
		}
		d, err := svc.EnrollmentFromImage(ctx, img)
		if err != nil {
			return nil, fmt.Errorf("faceImages[%d]: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// MergeEnrollment appends to, or replaces, the stored enrollment and keeps
// the most recent captures when the limit is exceeded.
func MergeEnrollment(stored any, additions []biometric.Descriptor, replace bool) biometric.Enrollment {
	var merged biometric.Enrollment
	if replace {
		merged = biometric.NewEnrollment(additions...)
	} else {
		merged = biometric.ParseEnrollment(stored).Append(additions...)
	}
	if extra := len(merged.Descriptors) - constants.MAX_ENROLLED_DESCRIPTORS; extra > 0 {
		merged = biometric.NewEnrollment(merged.Descriptors[extra:]...)
	}
	return merged
}

func RespondEnrollmentError(ctx any, err error) {
	switch {
	case errors.Is(err, biometric.ErrDegenerateDescriptor):
		apperrors.CustomError(ctx, "face capture is unusable, please retake it with better lighting", &constants.DEGENERATE_FACE_CAPTURE)
	case errors.Is(err, biometric.ErrCandidateMalformed), errors.Is(err, ErrTooManyDescriptors):
		apperrors.ClientError(ctx, "invalid face data", []error{err}, nil)
	default:
		apperrors.ClientError(ctx, "could not process face capture", []error{err}, nil)
	}
}

// EnrollUseCase adds a capture to the student's enrollment and turns
// biometric login on.
func EnrollUseCase(ctx any, userID string, payload *dto.EnrollBiometricDTO) (*dto.EnrollmentResponse, error) {
	reqCtx := utils.RequestContext(ctx)
	userRepo := repository.UserRepo()
	user, err := userRepo.FindByID(reqCtx, userID)
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	if user == nil {
		apperrors.NotFoundError(ctx, "user not found")
		return nil, errors.New("user not found")
	}
	if user.Role != constants.RoleStudent {
		apperrors.AuthorizationError(ctx, "only students can enroll face data")
		return nil, errors.New("non student enrollment")
	}

	var descriptors [][]any
	var images []string
	if len(payload.FaceDescriptor) > 0 {
		descriptors = [][]any{payload.FaceDescriptor}
	} else if payload.FaceImage != nil {
		images = []string{*payload.FaceImage}
	}
	additions, err := BuildEnrollment(reqCtx, biometric.BiometricService, descriptors, images)
	if err != nil {
		RespondEnrollmentError(ctx, err)
		return nil, err
	}

	merged := MergeEnrollment(user.BiometricData, additions, payload.Replace)
	_, err = userRepo.UpdatePartialByFilter(reqCtx, map[string]interface{}{"_id": userID}, map[string]interface{}{
		"biometricData":    merged.Vectors(),
		"biometricEnabled": true,
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	logger.Info("face enrollment updated", logger.LoggerOptions{
		Key:  "userID",
		Data: userID,
	}, logger.LoggerOptions{
		Key:  "enrolled",
		Data: len(merged.Descriptors),
	})
	return &dto.EnrollmentResponse{Enrolled: len(merged.Descriptors), BiometricEnabled: true}, nil
}

// ClearEnrollmentUseCase removes stored face data and turns biometric login off.
func ClearEnrollmentUseCase(ctx any, userID string) error {
	_, err := repository.UserRepo().UpdatePartialByFilter(utils.RequestContext(ctx), map[string]interface{}{"_id": userID}, map[string]interface{}{
		"biometricData":    nil,
		"biometricEnabled": false,
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return err
	}
	return nil
}

// ExtractDescriptorUseCase runs server side extraction for clients that
// cannot compute descriptors themselves.
func ExtractDescriptorUseCase(ctx any, payload *dto.ExtractDescriptorDTO) (*dto.DescriptorResponse, error) {
	if err := dto.ValidateImageInput(payload.FaceImage, "faceImage"); err != nil {
		apperrors.ClientError(ctx, err.Error(), nil, nil)
		return nil, err
	}
	d, err := biometric.BiometricService.CandidateFromImage(utils.RequestContext(ctx), payload.FaceImage)
	if err != nil {
		apperrors.ClientError(ctx, "could not process face capture", []error{err}, nil)
		return nil, err
	}
	return &dto.DescriptorResponse{
		Descriptor: d.Vector(),
		Length:     len(d),
		Neutral:    biometric.IsNeutral(d),
	}, nil
}

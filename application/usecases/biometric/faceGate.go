package biometric_usecases

import (
	"context"
	"errors"
	"fmt"

	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/entities"
	"certverify.io/infrastructure/biometric"
	"certverify.io/infrastructure/logger"
)

const (
	OutcomeAccepted   = "accepted"
	OutcomeRejected   = "rejected"
	OutcomeUnenrolled = "unenrolled"
	OutcomeMalformed  = "malformed"
)

// FaceGateRequired reports whether a login must pass the match gate. A
// biometric student always does; anyone who volunteers face data does too.
func FaceGateRequired(user *entities.User, creds *dto.FaceCredentialsDTO) bool {
	if creds != nil && creds.Supplied() {
		return true
	}
	return user != nil && user.Role == constants.RoleStudent && user.BiometricEnabled
}

// BuildCandidate turns the login capture into a validated descriptor. A
// client descriptor is preferred over an image when both are sent.
func BuildCandidate(ctx context.Context, svc biometric.BiometricServiceType, creds *dto.FaceCredentialsDTO) (biometric.Descriptor, error) {
	if creds == nil || !creds.Supplied() {
		return nil, fmt.Errorf("%w: no face capture supplied", biometric.ErrCandidateMalformed)
	}
	if len(creds.FaceDescriptor) > 0 {
		return biometric.ParseCandidate(creds.FaceDescriptor)
	}
	if err := dto.ValidateImageInput(*creds.FaceImage, "faceImage"); err != nil {
		return nil, fmt.Errorf("%w: %v", biometric.ErrCandidateMalformed, err)
	}
	candidate, err := svc.CandidateFromImage(ctx, *creds.FaceImage)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", biometric.ErrCandidateMalformed, err)
	}
	return candidate, nil
}

// RunFaceGate builds the candidate and matches it against the stored
// enrollment. Every failure is one of ErrCandidateMalformed,
// ErrNoEnrollmentData or ErrBiometricMismatch, or a context error.
func RunFaceGate(ctx context.Context, svc biometric.BiometricServiceType, creds *dto.FaceCredentialsDTO, stored any) (biometric.MatchResult, error) {
	candidate, err := BuildCandidate(ctx, svc, creds)
	if err != nil {
		recordOutcome(OutcomeMalformed)
		return biometric.MatchResult{MatchedIndex: -1, BestDistance: biometric.MismatchDistance}, err
	}

	result, err := svc.Verify(candidate, stored)
	switch {
	case err == nil:
		recordOutcome(OutcomeAccepted)
	case errors.Is(err, biometric.ErrNoEnrollmentData):
		recordOutcome(OutcomeUnenrolled)
	default:
		recordOutcome(OutcomeRejected)
	}
	return result, err
}

func recordOutcome(outcome string) {
	logger.RequestMetricMonitor.RecordFaceMatch(outcome)
}

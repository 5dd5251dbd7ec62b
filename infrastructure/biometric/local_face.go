package biometric

import (
	"context"
	"errors"
	"sync/atomic"

	"certverify.io/infrastructure/logger"
)

// LocalFaceService extracts descriptors in-process and matches them against
// stored enrollments. It holds no per-request state.
type LocalFaceService struct {
	processingStats ProcessingStats
}

// ProcessingStats tracks gate decisions since start up.
type ProcessingStats struct {
	Accepted   atomic.Int64
	Rejected   atomic.Int64
	Unenrolled atomic.Int64
}

func NewLocalFaceService() *LocalFaceService {
	logger.Info("local face service initialized", logger.LoggerOptions{
		Key: "config",
		Data: map[string]any{
			"descriptor_length": DescriptorLength,
			"match_threshold":   MatchThreshold,
		},
	})
	return &LocalFaceService{}
}

// CandidateFromImage extracts a login descriptor from an uploaded image.
func (lfs *LocalFaceService) CandidateFromImage(ctx context.Context, encoded string) (Descriptor, error) {
	return Capture(ctx, NewUploadSource(encoded))
}

// EnrollmentFromImage extracts an enrollment descriptor, refusing degenerate captures.
func (lfs *LocalFaceService) EnrollmentFromImage(ctx context.Context, encoded string) (Descriptor, error) {
	return CaptureForEnrollment(ctx, NewUploadSource(encoded))
}

// Verify resolves the stored enrollment and runs the match gate.
func (lfs *LocalFaceService) Verify(candidate Descriptor, stored any) (MatchResult, error) {
	enrollment := ParseEnrollment(stored)
	result, err := Match(candidate, enrollment)

	fields := []logger.LoggerOptions{
		{Key: "shape", Data: enrollment.Shape.String()},
		{Key: "compared", Data: result.Compared},
		{Key: "skipped", Data: result.Skipped},
	}
	switch {
	case err == nil:
		lfs.processingStats.Accepted.Add(1)
		logger.Info("face match accepted", append(fields,
			logger.LoggerOptions{Key: "distance", Data: result.BestDistance},
			logger.LoggerOptions{Key: "index", Data: result.MatchedIndex})...)
	case errors.Is(err, ErrNoEnrollmentData):
		lfs.processingStats.Unenrolled.Add(1)
		logger.Warning("face match attempted without biometric data registered", fields...)
	default:
		lfs.processingStats.Rejected.Add(1)
		logger.Warning("face match rejected", append(fields,
			logger.LoggerOptions{Key: "best_distance", Data: result.BestDistance})...)
	}
	return result, err
}

// GetStats returns accepted, rejected and unenrolled decision counts.
func (lfs *LocalFaceService) GetStats() (accepted, rejected, unenrolled int64) {
	return lfs.processingStats.Accepted.Load(), lfs.processingStats.Rejected.Load(), lfs.processingStats.Unenrolled.Load()
}

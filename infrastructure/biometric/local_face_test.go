package biometric

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFaceServiceVerify(t *testing.T) {
	service := NewLocalFaceService()
	candidate := filled(DescriptorLength, 0.5)

	result, err := service.Verify(candidate, [][]float64{filled(DescriptorLength, 1).Vector(), candidate.Vector()})
	require.NoError(t, err)
	assert.Equal(t, 1, result.MatchedIndex)

	_, err = service.Verify(candidate, []any{filled(DescriptorLength, 0).Vector()})
	assert.ErrorIs(t, err, ErrBiometricMismatch)

	_, err = service.Verify(candidate, nil)
	assert.ErrorIs(t, err, ErrNoEnrollmentData)

	accepted, rejected, unenrolled := service.GetStats()
	assert.Equal(t, int64(1), accepted)
	assert.Equal(t, int64(1), rejected)
	assert.Equal(t, int64(1), unenrolled)
}

func TestLocalFaceServiceImages(t *testing.T) {
	service := NewLocalFaceService()
	encoded := encodedPNG(t, gradientImage(12, 12))

	enrolled, err := service.EnrollmentFromImage(context.Background(), encoded)
	require.NoError(t, err)

	candidate, err := service.CandidateFromImage(context.Background(), encoded)
	require.NoError(t, err)

	result, err := service.Verify(candidate, NewEnrollment(enrolled).Vectors())
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, 0.0, result.BestDistance)
}

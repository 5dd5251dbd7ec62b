package biometric_usecases

import (
	"context"
	"strings"
	"testing"

	"certverify.io/application/constants"
	"certverify.io/infrastructure/biometric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEnrollment(t *testing.T) {
	svc := &stubService{imageDescriptor: descriptorOf(0.2)}
	image := strings.Repeat("abcd", 8)

	got, err := BuildEnrollment(context.Background(), svc, [][]any{asJSON(descriptorOf(0.4))}, []string{image})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, descriptorOf(0.4), got[0])
	assert.Equal(t, descriptorOf(0.2), got[1])
}

func TestBuildEnrollmentRefusesDegenerateCaptures(t *testing.T) {
	image := strings.Repeat("abcd", 8)

	_, err := BuildEnrollment(context.Background(), &stubService{}, [][]any{asJSON(biometric.NeutralDescriptor())}, nil)
	assert.ErrorIs(t, err, biometric.ErrDegenerateDescriptor)

	_, err = BuildEnrollment(context.Background(), &stubService{imageDescriptor: biometric.NeutralDescriptor()}, nil, []string{image})
	assert.ErrorIs(t, err, biometric.ErrDegenerateDescriptor)
}

func TestBuildEnrollmentRejectsMalformedDescriptor(t *testing.T) {
	bad := asJSON(descriptorOf(0.4))
	bad[5] = "0.3"
	_, err := BuildEnrollment(context.Background(), &stubService{}, [][]any{bad}, nil)
	assert.ErrorIs(t, err, biometric.ErrCandidateMalformed)
	assert.Contains(t, err.Error(), "faceDescriptors[0]")
}

func TestBuildEnrollmentLimit(t *testing.T) {
	many := make([][]any, constants.MAX_ENROLLED_DESCRIPTORS+1)
	for i := range many {
		many[i] = asJSON(descriptorOf(0.4))
	}
	_, err := BuildEnrollment(context.Background(), &stubService{}, many, nil)
	assert.ErrorIs(t, err, ErrTooManyDescriptors)
}

func TestMergeEnrollment(t *testing.T) {
	stored := [][]float64{descriptorOf(0.1).Vector()}

	appended := MergeEnrollment(stored, []biometric.Descriptor{descriptorOf(0.2)}, false)
	require.Len(t, appended.Descriptors, 2)
	assert.Equal(t, descriptorOf(0.1), appended.Descriptors[0])
	assert.Equal(t, descriptorOf(0.2), appended.Descriptors[1])

	replaced := MergeEnrollment(stored, []biometric.Descriptor{descriptorOf(0.2)}, true)
	require.Len(t, replaced.Descriptors, 1)
	assert.Equal(t, descriptorOf(0.2), replaced.Descriptors[0])
}

func TestMergeEnrollmentNormalisesLegacyShape(t *testing.T) {
	merged := MergeEnrollment(descriptorOf(0.1).Vector(), []biometric.Descriptor{descriptorOf(0.2)}, false)
	assert.Equal(t, biometric.ShapeVectorCollection, merged.Shape)
	assert.Len(t, merged.Vectors(), 2)
}

func TestMergeEnrollmentKeepsMostRecent(t *testing.T) {
	stored := make([][]float64, constants.MAX_ENROLLED_DESCRIPTORS)
	for i := range stored {
		stored[i] = descriptorOf(float64(i) / 100).Vector()
	}
	merged := MergeEnrollment(stored, []biometric.Descriptor{descriptorOf(0.9)}, false)
	require.Len(t, merged.Descriptors, constants.MAX_ENROLLED_DESCRIPTORS)
	assert.Equal(t, descriptorOf(0.01), merged.Descriptors[0])
	assert.Equal(t, descriptorOf(0.9), merged.Descriptors[len(merged.Descriptors)-1])
}

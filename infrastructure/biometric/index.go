package biometric

import "context"

// BiometricServiceType builds descriptors from captures and runs the match gate.
type BiometricServiceType interface {
	CandidateFromImage(ctx context.Context, encoded string) (Descriptor, error)
	EnrollmentFromImage(ctx context.Context, encoded string) (Descriptor, error)
	Verify(candidate Descriptor, stored any) (MatchResult, error)
}

var BiometricService BiometricServiceType = &LocalFaceService{}

func InitialiseBiometricService() {
	BiometricService = NewLocalFaceService()
}

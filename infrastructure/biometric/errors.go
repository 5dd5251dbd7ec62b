package biometric

import "errors"

var (
	// ErrCandidateMalformed is returned when a login descriptor has the wrong
	// length or holds anything other than finite numbers in [0,1].
	ErrCandidateMalformed = errors.New("candidate descriptor malformed")

	// ErrNoEnrollmentData is returned when the identity has no stored descriptors.
	ErrNoEnrollmentData = errors.New("no biometric data enrolled")

	// ErrBiometricMismatch is returned when no enrolled descriptor is within MatchThreshold.
	ErrBiometricMismatch = errors.New("biometric mismatch")

	// ErrDegenerateDescriptor is returned when enrollment is attempted with the neutral fallback descriptor.
	ErrDegenerateDescriptor = errors.New("descriptor carries no features")
)

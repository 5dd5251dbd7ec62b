package biometric

import (
	"math"

	"certverify.io/infrastructure/logger"
)

// MatchThreshold is the exclusive upper bound on the distance of an accepted match.
const MatchThreshold = 0.6

// MismatchDistance is the distance assigned to descriptors of differing lengths.
const MismatchDistance = 1.0

// MatchResult is the outcome of one gate decision. BestDistance is for
// diagnostics only and must not reach the client.
type MatchResult struct {
	Accepted     bool
	BestDistance float64
	// MatchedIndex is the position of the accepting descriptor, -1 on reject.
	MatchedIndex int
	Compared     int
	Skipped      int
}

// EuclideanDistance returns the Euclidean distance between a and b, or
// MismatchDistance when their lengths differ.
func EuclideanDistance(a, b Descriptor) float64 {
	if len(a) != len(b) {
		return MismatchDistance
	}
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// Match compares candidate against the enrolled descriptors in stored order and
// accepts on the first one strictly closer than MatchThreshold. The candidate
// is assumed to have passed ParseCandidate.
func Match(candidate Descriptor, enrolled Enrollment) (MatchResult, error) {
	result := MatchResult{
		BestDistance: math.Inf(1),
		MatchedIndex: -1,
		Skipped:      enrolled.Skipped,
	}
	if enrolled.IsEmpty() {
		return result, ErrNoEnrollmentData
	}

	for i, stored := range enrolled.Descriptors {
		if !usable(stored) {
			logger.Warning("skipping enrolled descriptor with invalid values", logger.LoggerOptions{
				Key:  "index",
				Data: i,
			})
			result.Skipped++
			continue
		}
		distance := EuclideanDistance(candidate, stored)
		result.Compared++
		if distance < result.BestDistance {
			result.BestDistance = distance
		}
		if distance < MatchThreshold {
			result.Accepted = true
			result.MatchedIndex = i
			return result, nil
		}
	}

	if result.Compared == 0 {
		result.BestDistance = MismatchDistance
	}
	return result, ErrBiometricMismatch
}

func usable(d Descriptor) bool {
	if len(d) == 0 {
		return false
	}
	for _, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

package biometric

import (
	"fmt"
	"math"
	"reflect"

	"certverify.io/infrastructure/logger"
)

// EnrollmentShape tags how enrolled descriptors were found in storage.
type EnrollmentShape int

const (
	ShapeEmpty EnrollmentShape = iota
	// ShapeSingleVector is the legacy layout: one flat numeric array.
	ShapeSingleVector
	ShapeVectorCollection
)

func (s EnrollmentShape) String() string {
	switch s {
	case ShapeSingleVector:
		return "single_vector"
	case ShapeVectorCollection:
		return "vector_collection"
	default:
		return "empty"
	}
}

// Enrollment is the normalized set of descriptors stored for one identity.
type Enrollment struct {
	Shape       EnrollmentShape
	Descriptors []Descriptor
	// Skipped counts stored entries that were not numeric vectors.
	Skipped int
}

// NewEnrollment builds a collection-shaped enrollment from descriptors.
func NewEnrollment(descriptors ...Descriptor) Enrollment {
	if len(descriptors) == 0 {
		return Enrollment{Shape: ShapeEmpty}
	}
	return Enrollment{Shape: ShapeVectorCollection, Descriptors: descriptors}
}

// IsEmpty reports whether nothing at all was stored, valid or not.
func (e Enrollment) IsEmpty() bool {
	return len(e.Descriptors) == 0 && e.Skipped == 0
}

// Append returns a new enrollment with d added after the existing descriptors.
func (e Enrollment) Append(d ...Descriptor) Enrollment {
	out := make([]Descriptor, 0, len(e.Descriptors)+len(d))
	out = append(out, e.Descriptors...)
	out = append(out, d...)
	return NewEnrollment(out...)
}

// Vectors returns the descriptors as nested slices, in stored order.
func (e Enrollment) Vectors() [][]float64 {
	out := make([][]float64, 0, len(e.Descriptors))
	for _, d := range e.Descriptors {
		out = append(out, d.Vector())
	}
	return out
}

// ParseEnrollment resolves stored biometric data into an Enrollment. raw may be
// a flat numeric array, an array of numeric arrays, or nil. Any slice type is
// accepted, including decoder-specific named slices.
func ParseEnrollment(raw any) Enrollment {
	v := reflect.ValueOf(raw)
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return Enrollment{Shape: ShapeEmpty}
		}
		v = v.Elem()
	}
	if !v.IsValid() || !isList(v) || v.Len() == 0 {
		return Enrollment{Shape: ShapeEmpty}
	}

	if flat, ok := numericVector(v); ok {
		return Enrollment{Shape: ShapeSingleVector, Descriptors: []Descriptor{flat}}
	}

	e := Enrollment{Shape: ShapeVectorCollection}
	for i := 0; i < v.Len(); i++ {
		entry := unwrap(v.Index(i))
		d, ok := numericVector(entry)
		if !ok {
			logger.Warning("skipping malformed enrolled descriptor", logger.LoggerOptions{
				Key:  "index",
				Data: i,
			}, logger.LoggerOptions{
				Key:  "kind",
				Data: describeKind(entry),
			})
			e.Skipped++
			continue
		}
		e.Descriptors = append(e.Descriptors, d)
	}
	return e
}

// ParseCandidate validates a login-time descriptor supplied by a client.
func ParseCandidate(raw []any) (Descriptor, error) {
	if len(raw) != DescriptorLength {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrCandidateMalformed, DescriptorLength, len(raw))
	}
	d := make(Descriptor, 0, DescriptorLength)
	for i, item := range raw {
		f, ok := toFloat(reflect.ValueOf(item))
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not a number", ErrCandidateMalformed, i)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > 1 {
			return nil, fmt.Errorf("%w: element %d out of range", ErrCandidateMalformed, i)
		}
		d = append(d, f)
	}
	return d, nil
}

func numericVector(v reflect.Value) (Descriptor, bool) {
	if !v.IsValid() || !isList(v) || v.Len() == 0 {
		return nil, false
	}
	d := make(Descriptor, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		f, ok := toFloat(v.Index(i))
		if !ok {
			return nil, false
		}
		d = append(d, f)
	}
	return d, true
}

func toFloat(v reflect.Value) (float64, bool) {
	v = unwrap(v)
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	}
	return 0, false
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isList(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func describeKind(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Kind().String()
}

package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterValidation("password", validatePasswordStrength)
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("name_spacial_char", validateNameWithSpecialChars)
}

type Validator struct{}

func (v *Validator) ValidateStruct(payload interface{}) *[]error {
	return validateStruct(payload)
}

func (v *Validator) ValidateValue(value any, rules string) error {
	return validateField(value, rules)
}

var ValidatorInstance = Validator{}

func validateStruct(payload interface{}) *[]error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &[]error{err}
	}
	errs := []error{}
	for _, fieldErr := range validationErrs {
		errs = append(errs, errors.New(describe(fieldErr)))
	}
	return &errs
}

func validateField(value any, rules string) error {
	err := validate.Var(value, rules)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return errors.New(describe(validationErrs[0]))
	}
	return err
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	if field == "" {
		field = "value"
	} else {
		field = strings.ToLower(field[:1]) + field[1:]
	}
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "password":
		return fmt.Sprintf("%s must be at least 8 characters and contain a letter and a digit", field)
	case "role":
		return fmt.Sprintf("%s must be one of student, verifier or admin", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, fieldErr.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	case "len":
		return fmt.Sprintf("%s must have length %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag())
	}
}

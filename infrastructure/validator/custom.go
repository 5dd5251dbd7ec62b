package validator

import (
	"regexp"
	"unicode"

	"certverify.io/application/constants"
	"certverify.io/application/utils"
	"github.com/go-playground/validator/v10"
)

var nameRegex = regexp.MustCompile(`^[\p{L}'\- .]+$`)

// password needs at least 8 characters with a letter and a digit
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 {
		return false
	}

	hasDigit := false
	hasLetter := false

	for _, char := range password {
		if unicode.IsDigit(char) {
			hasDigit = true
		} else if unicode.IsLetter(char) {
			hasLetter = true
		}
	}

	return hasDigit && hasLetter
}

func validateRole(fl validator.FieldLevel) bool {
	return utils.HasItemString(&constants.AVAILABLE_ROLES, fl.Field().String())
}

func validateNameWithSpecialChars(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Name     string `validate:"required,name_spacial_char"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	Role     string `validate:"required,role"`
}

func TestValidateStruct(t *testing.T) {
	valid := signupPayload{Name: "Ada Obi", Email: "ada@example.com", Password: "passw0rdX", Role: "student"}

	cases := []struct {
		name   string
		edit   func(p *signupPayload)
		errMsg string
	}{
		{"valid", func(p *signupPayload) {}, ""},
		{"short password", func(p *signupPayload) { p.Password = "a1b2" }, "password must be at least 8 characters and contain a letter and a digit"},
		{"password without digit", func(p *signupPayload) { p.Password = "passwordonly" }, "password must be at least 8 characters and contain a letter and a digit"},
		{"unknown role", func(p *signupPayload) { p.Role = "registrar" }, "role must be one of student, verifier or admin"},
		{"bad email", func(p *signupPayload) { p.Email = "ada" }, "email must be a valid email"},
		{"missing name", func(p *signupPayload) { p.Name = "" }, "name is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.edit(&p)
			errs := ValidatorInstance.ValidateStruct(p)
			if tc.errMsg == "" {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			require.Len(t, *errs, 1)
			assert.EqualError(t, (*errs)[0], tc.errMsg)
		})
	}
}

func TestValidateValue(t *testing.T) {
	assert.NoError(t, ValidatorInstance.ValidateValue("admin", "role"))
	assert.Error(t, ValidatorInstance.ValidateValue("root", "role"))
}

package entities

import (
	"time"

	"certverify.io/application/utils"
)

type LoginDevice struct {
	Name      string    `bson:"name" json:"name"`
	OS        string    `bson:"os" json:"os"`
	Browser   string    `bson:"browser" json:"browser"`
	Mobile    bool      `bson:"mobile" json:"mobile"`
	LastLogin time.Time `bson:"lastLogin" json:"lastLogin"`
}

// User is an account holder of any role. BiometricData is stored as whatever
// shape was written historically and is resolved through biometric.ParseEnrollment.
type User struct {
	Name             string       `bson:"name" json:"name"`
	Email            string       `bson:"email" json:"email"`
	Password         string       `bson:"password" json:"-"`
	Role             string       `bson:"role" json:"role"`
	StudentID        *string      `bson:"studentID,omitempty" json:"studentID,omitempty"`
	Institution      *string      `bson:"institution,omitempty" json:"institution,omitempty"`
	BiometricData    any          `bson:"biometricData,omitempty" json:"-"`
	BiometricEnabled bool         `bson:"biometricEnabled" json:"biometricEnabled"`
	LastLoginDevice  *LoginDevice `bson:"lastLoginDevice,omitempty" json:"lastLoginDevice,omitempty"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model User) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		model.ID = utils.GenerateUULDString()
	}
	model.UpdatedAt = now
	return model
}

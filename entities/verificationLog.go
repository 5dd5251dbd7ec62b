package entities

import (
	"time"

	"certverify.io/application/utils"
)

type VerificationLog struct {
	VerifierID        string    `bson:"verifierID" json:"verifierID"`
	CertificateNumber *string   `bson:"certificateNumber,omitempty" json:"certificateNumber,omitempty"`
	Query             string    `bson:"query" json:"query"`
	Status            string    `bson:"status" json:"status"`
	VerifiedAt        time.Time `bson:"verifiedAt" json:"verifiedAt"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model VerificationLog) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateUULDString()
		}
	}
	if model.VerifiedAt.IsZero() {
		model.VerifiedAt = now
	}
	model.UpdatedAt = now
	return model
}

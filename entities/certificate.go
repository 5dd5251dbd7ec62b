package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"certverify.io/application/utils"
)

type Certificate struct {
	CertificateNumber string     `bson:"certificateNumber" json:"certificateNumber"`
	StudentID         string     `bson:"studentID" json:"studentID"`
	StudentName       string     `bson:"studentName" json:"studentName"`
	StudentEmail      string     `bson:"studentEmail" json:"studentEmail"`
	Course            string     `bson:"course" json:"course"`
	Grade             string     `bson:"grade" json:"grade"`
	Institution       string     `bson:"institution" json:"institution"`
	IssueDate         time.Time  `bson:"issueDate" json:"issueDate"`
	IssuedBy          string     `bson:"issuedBy" json:"issuedBy"`
	DocumentHash      string     `bson:"documentHash" json:"documentHash"`
	TxHash            string     `bson:"txHash" json:"txHash"`
	BlockNumber       int64      `bson:"blockNumber" json:"blockNumber"`
	FileKey           *string    `bson:"fileKey,omitempty" json:"fileKey,omitempty"`
	Revoked           bool       `bson:"revoked" json:"revoked"`
	RevokedReason     *string    `bson:"revokedReason,omitempty" json:"revokedReason,omitempty"`
	RevokedAt         *time.Time `bson:"revokedAt,omitempty" json:"revokedAt,omitempty"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ComputeDocumentHash is the sha256 of the fields that make up the issued
// document. Revocation and ledger fields are not part of it.
func (model *Certificate) ComputeDocumentHash() string {
	canonical := strings.Join([]string{
		model.CertificateNumber,
		model.StudentID,
		strings.TrimSpace(model.StudentName),
		strings.ToLower(strings.TrimSpace(model.StudentEmail)),
		strings.TrimSpace(model.Course),
		strings.TrimSpace(model.Grade),
		strings.TrimSpace(model.Institution),
		model.IssueDate.UTC().Format("2006-01-02"),
	}, "|")
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

func (model Certificate) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateUULDString()
		}
	}
	model.UpdatedAt = now
	return model
}

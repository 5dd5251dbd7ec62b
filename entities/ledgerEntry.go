package entities

import (
	"time"

	"certverify.io/application/utils"
)

// LedgerEntry is one anchored certificate on the simulated ledger.
type LedgerEntry struct {
	TxHash            string    `bson:"txHash" json:"txHash"`
	BlockNumber       int64     `bson:"blockNumber" json:"blockNumber"`
	PreviousHash      string    `bson:"previousHash" json:"previousHash"`
	DocumentHash      string    `bson:"documentHash" json:"documentHash"`
	CertificateNumber string    `bson:"certificateNumber" json:"certificateNumber"`
	Timestamp         time.Time `bson:"timestamp" json:"timestamp"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model LedgerEntry) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateUULDString()
		}
	}
	if model.Timestamp.IsZero() {
		model.Timestamp = now
	}
	model.UpdatedAt = now
	return model
}

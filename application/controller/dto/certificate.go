package dto

import "time"

type IssueCertificateDTO struct {
	StudentID   string     `json:"studentID" validate:"required"`
	Course      string     `json:"course" validate:"required,max=200"`
	Grade       string     `json:"grade" validate:"required,max=50"`
	Institution string     `json:"institution" validate:"required,max=200"`
	IssueDate   *time.Time `json:"issueDate"`
	HasDocument bool       `json:"hasDocument"`
}

type RevokeCertificateDTO struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type VerifyCertificateDTO struct {
	CertificateNumber *string `json:"certificateNumber" validate:"required_without=DocumentHash,omitnil,min=1,max=64"`
	DocumentHash      *string `json:"documentHash" validate:"required_without=CertificateNumber,omitnil,len=64,hexadecimal"`
}

type IssuedCertificateResponse struct {
	CertificateNumber string  `json:"certificateNumber"`
	DocumentHash      string  `json:"documentHash"`
	TxHash            string  `json:"txHash"`
	BlockNumber       int64   `json:"blockNumber"`
	UploadURL         *string `json:"uploadURL,omitempty"`
}

type VerificationResult struct {
	Status      string `json:"status"`
	Certificate any    `json:"certificate,omitempty"`
	LedgerEntry any    `json:"ledgerEntry,omitempty"`
}

type PaginationDTO struct {
	Page  int64 `form:"page" validate:"omitempty,min=1"`
	Limit int64 `form:"limit" validate:"omitempty,min=1,max=100"`
}

// Normalise fills defaults and returns the skip offset.
func (p *PaginationDTO) Normalise() (skip int64, limit int64) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	return (p.Page - 1) * p.Limit, p.Limit
}

package certificate_usecases

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/entities"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func issued() (*entities.Certificate, *entities.LedgerEntry) {
	c := &entities.Certificate{
		CertificateNumber: "CERT-2024-ABCDEF12",
		StudentID:         "STU-001",
		StudentName:       "Ada Obi",
		StudentEmail:      "ada@example.com",
		Course:            "Computer Science",
		Grade:             "First Class",
		Institution:       "University of Lagos",
		IssueDate:         time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		TxHash:            "0xfeed",
		BlockNumber:       7,
	}
	c.DocumentHash = c.ComputeDocumentHash()
	entry := &entities.LedgerEntry{
		TxHash:            c.TxHash,
		BlockNumber:       c.BlockNumber,
		DocumentHash:      c.DocumentHash,
		CertificateNumber: c.CertificateNumber,
	}
	return c, entry
}

func TestDetermineStatus(t *testing.T) {
	tests := []struct {
		name string
		edit func(c *entities.Certificate, e **entities.LedgerEntry)
		want string
	}{
		{"valid", func(c *entities.Certificate, e **entities.LedgerEntry) {}, constants.VerificationValid},
		{"revoked", func(c *entities.Certificate, e **entities.LedgerEntry) { c.Revoked = true }, constants.VerificationRevoked},
		{"record edited after issue", func(c *entities.Certificate, e **entities.LedgerEntry) { c.Grade = "Distinction" }, constants.VerificationTampered},
		{"record edited and revoked", func(c *entities.Certificate, e **entities.LedgerEntry) {
			c.Grade = "Distinction"
			c.Revoked = true
		}, constants.VerificationTampered},
		{"stored hash rewritten", func(c *entities.Certificate, e **entities.LedgerEntry) {
			c.Grade = "Distinction"
			c.DocumentHash = c.ComputeDocumentHash()
		}, constants.VerificationTampered},
		{"missing ledger entry", func(c *entities.Certificate, e **entities.LedgerEntry) { *e = nil }, constants.VerificationTampered},
		{"ledger entry for another certificate", func(c *entities.Certificate, e **entities.LedgerEntry) { (*e).CertificateNumber = "CERT-OTHER" }, constants.VerificationTampered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, e := issued()
			tt.edit(c, &e)
			assert.Equal(t, tt.want, DetermineStatus(c, e))
		})
	}
}

func TestDetermineStatusNotFound(t *testing.T) {
	_, e := issued()
	assert.Equal(t, constants.VerificationNotFound, DetermineStatus(nil, e))
}

func TestNewCertificateNumber(t *testing.T) {
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	a := NewCertificateNumber(at)
	b := NewCertificateNumber(at)
	assert.Regexp(t, regexp.MustCompile(`^CERT-2025-[0-9A-F]{8}$`), a)
	assert.NotEqual(t, a, b)
}

func TestDocumentKey(t *testing.T) {
	assert.Equal(t, "certificates/CERT-1.pdf", documentKey("CERT-1"))
}

func TestVerifyCertificateRejectsBlankQuery(t *testing.T) {
	empty := ""
	spaces := "   "
	tests := []struct {
		name    string
		payload dto.VerifyCertificateDTO
	}{
		{"empty certificate number", dto.VerifyCertificateDTO{CertificateNumber: &empty}},
		{"whitespace certificate number", dto.VerifyCertificateDTO{CertificateNumber: &spaces}},
		{"whitespace number and hash", dto.VerifyCertificateDTO{CertificateNumber: &spaces, DocumentHash: &spaces}},
		{"nothing", dto.VerifyCertificateDTO{}},
	}
	gin.SetMode(gin.TestMode)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)
			ctx.Request = httptest.NewRequest(http.MethodPost, "/verifier/verify", nil)

			var result *dto.VerificationResult
			var err error
			assert.NotPanics(t, func() {
				result, err = VerifyCertificateUseCase(ctx, "verifier-1", &tt.payload)
			})
			assert.ErrorIs(t, err, ErrEmptyVerificationQuery)
			assert.Nil(t, result)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCertificate() Certificate {
	return Certificate{
		CertificateNumber: "CERT-2024-0001",
		StudentID:         "STU-001",
		StudentName:       "Ada Obi",
		StudentEmail:      "ada@example.com",
		Course:            "Computer Science",
		Grade:             "First Class",
		Institution:       "University of Lagos",
		IssueDate:         time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestComputeDocumentHashIsStable(t *testing.T) {
	a := sampleCertificate()
	b := sampleCertificate()
	require.Len(t, a.ComputeDocumentHash(), 64)
	assert.Equal(t, a.ComputeDocumentHash(), b.ComputeDocumentHash())
}

func TestComputeDocumentHashIgnoresLedgerAndRevocation(t *testing.T) {
	a := sampleCertificate()
	b := sampleCertificate()
	b.TxHash = "0xabc"
	b.BlockNumber = 42
	b.Revoked = true
	assert.Equal(t, a.ComputeDocumentHash(), b.ComputeDocumentHash())
}

func TestComputeDocumentHashDetectsEdits(t *testing.T) {
	base := sampleCertificate()
	for name, edit := range map[string]func(c *Certificate){
		"grade":  func(c *Certificate) { c.Grade = "Second Class Upper" },
		"name":   func(c *Certificate) { c.StudentName = "Ada Obi-Eze" },
		"date":   func(c *Certificate) { c.IssueDate = c.IssueDate.AddDate(0, 0, 1) },
		"course": func(c *Certificate) { c.Course = "Mathematics" },
	} {
		t.Run(name, func(t *testing.T) {
			edited := sampleCertificate()
			edit(&edited)
			assert.NotEqual(t, base.ComputeDocumentHash(), edited.ComputeDocumentHash())
		})
	}
}

func TestParseModelStampsIdentity(t *testing.T) {
	parsed := sampleCertificate().ParseModel().(Certificate)
	assert.NotEmpty(t, parsed.ID)
	assert.False(t, parsed.CreatedAt.IsZero())

	again := parsed.ParseModel().(Certificate)
	assert.Equal(t, parsed.ID, again.ID)
	assert.Equal(t, parsed.CreatedAt, again.CreatedAt)
}

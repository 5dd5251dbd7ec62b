package emails

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCertificateIssued(t *testing.T) {
	html := RenderTemplate("certificate_issued", map[string]any{
		"StudentName":       "Ada <Obi>",
		"Institution":       "University of Lagos",
		"Course":            "Computer Science",
		"CertificateNumber": "CERT-1",
		"Grade":             "First Class",
		"TxHash":            "0xabc",
	})
	require.NotNil(t, html)
	assert.Contains(t, *html, "CERT-1")
	assert.Contains(t, *html, "Ada &lt;Obi&gt;")
}

func TestRenderUnknownTemplate(t *testing.T) {
	assert.Nil(t, RenderTemplate("does_not_exist", nil))
}

func TestSendEmailWithoutKey(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	assert.False(t, EmailService.SendEmail("a@example.com", "subject", "certificate_issued", nil))
}

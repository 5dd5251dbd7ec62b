package azure

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"

	"certverify.io/infrastructure/file_upload/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *AzureBlobSignedURLService {
	return &AzureBlobSignedURLService{
		AccountName:   "certstore",
		AccountKey:    base64.StdEncoding.EncodeToString([]byte("not-a-real-account-key")),
		ContainerName: "certificates",
	}
}

func TestGenerateDownloadURL(t *testing.T) {
	signed, err := testService().GenerateDownloadURL("CERT-1.pdf")
	require.NoError(t, err)

	parsed, err := url.Parse(*signed)
	require.NoError(t, err)
	assert.Equal(t, "certstore.blob.core.windows.net", parsed.Host)
	assert.Equal(t, "/certificates/CERT-1.pdf", parsed.Path)
	assert.Equal(t, "r", parsed.Query().Get("sp"))
	assert.NotEmpty(t, parsed.Query().Get("sig"))
}

func TestGenerateUploadURLAllowsWrite(t *testing.T) {
	signed, err := testService().GenerateUploadURL("CERT-1.pdf")
	require.NoError(t, err)
	parsed, err := url.Parse(*signed)
	require.NoError(t, err)
	assert.True(t, strings.Contains(parsed.Query().Get("sp"), "w"))
	assert.False(t, strings.Contains(parsed.Query().Get("sp"), "r"))
}

func TestSignedURLNeedsExactlyOneOfReadOrWrite(t *testing.T) {
	_, err := testService().GeneratedSignedURL("x", types.SignedURLPermission{Read: true, Write: true})
	assert.Error(t, err)
	_, err = testService().GeneratedSignedURL("x", types.SignedURLPermission{})
	assert.Error(t, err)
}

func TestSignedURLRejectsInvalidKey(t *testing.T) {
	svc := testService()
	svc.AccountKey = "%%%not-base64"
	_, err := svc.GenerateDownloadURL("x")
	assert.Error(t, err)
}

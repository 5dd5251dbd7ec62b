package azure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"certverify.io/infrastructure/file_upload/types"
	"certverify.io/infrastructure/logger"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
)

type AzureBlobSignedURLService struct {
	AccountName   string
	ContainerName string
	AccountKey    string
}

func (azurlservice *AzureBlobSignedURLService) serviceURL() string {
	return fmt.Sprintf("https://%s.blob.core.windows.net/", azurlservice.AccountName)
}

func (azurlservice *AzureBlobSignedURLService) blobURL(fileName string) string {
	return fmt.Sprintf("%s%s/%s", azurlservice.serviceURL(), azurlservice.ContainerName, fileName)
}

func (azurlservice *AzureBlobSignedURLService) client() (*azblob.Client, error) {
	credential, err := azblob.NewSharedKeyCredential(azurlservice.AccountName, azurlservice.AccountKey)
	if err != nil {
		logger.Error("error generating azblob shared key credential", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	return azblob.NewClientWithSharedKeyCredential(azurlservice.serviceURL(), credential, nil)
}

func (azurlservice *AzureBlobSignedURLService) GeneratedSignedURL(fileName string, permission types.SignedURLPermission) (*string, error) {
	if permission.Read == permission.Write {
		return nil, errors.New("permission must be either read or write")
	}
	credential, err := azblob.NewSharedKeyCredential(azurlservice.AccountName, azurlservice.AccountKey)
	if err != nil {
		logger.Error("error generating azblob shared key credential", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	now := time.Now().UTC()
	sasQueryParams, err := sas.BlobSignatureValues{
		Protocol:      sas.ProtocolHTTPS,
		StartTime:     now,
		ExpiryTime:    now.Add(types.SignedURLTTL),
		Permissions:   (&sas.BlobPermissions{Read: permission.Read, Write: permission.Write, Create: permission.Write, Delete: permission.Delete}).String(),
		ContainerName: azurlservice.ContainerName,
		BlobName:      fileName,
	}.SignWithSharedKey(credential)
	if err != nil {
		logger.Error("error signing blob signature values", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	sasURL := fmt.Sprintf("%s?%s", azurlservice.blobURL(fileName), sasQueryParams.Encode())
	return &sasURL, nil
}

func (azurlservice *AzureBlobSignedURLService) GenerateDownloadURL(fileName string) (*string, error) {
	return azurlservice.GeneratedSignedURL(fileName, types.SignedURLPermission{Read: true})
}

func (azurlservice *AzureBlobSignedURLService) GenerateUploadURL(fileName string) (*string, error) {
	return azurlservice.GeneratedSignedURL(fileName, types.SignedURLPermission{Write: true})
}

func (azurlservice *AzureBlobSignedURLService) DeleteFile(fileName string) error {
	client, err := azurlservice.client()
	if err != nil {
		return err
	}
	_, err = client.DeleteBlob(context.TODO(), azurlservice.ContainerName, fileName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		logger.Error("error deleting blob", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "fileName",
			Data: fileName,
		})
		return err
	}
	return nil
}

func (azurlservice *AzureBlobSignedURLService) CheckFileExists(fileName string) (bool, error) {
	client, err := azurlservice.client()
	if err != nil {
		return false, err
	}
	blob := client.ServiceClient().NewContainerClient(azurlservice.ContainerName).NewBlobClient(fileName)
	_, err = blob.GetProperties(context.TODO(), nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

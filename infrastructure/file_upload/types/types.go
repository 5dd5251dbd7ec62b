package types

import "time"

type FileUploaderType interface {
	GenerateDownloadURL(fileName string) (*string, error)
	GenerateUploadURL(fileName string) (*string, error)
	CheckFileExists(fileName string) (bool, error)
	DeleteFile(fileName string) error
}

type SignedURLPermission struct {
	Read   bool `json:"read"`
	Write  bool `json:"write"`
	Delete bool `json:"delete"`
}

// SignedURLTTL is how long an upload or download link stays usable.
const SignedURLTTL = 15 * time.Minute

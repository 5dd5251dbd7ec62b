package certificate_usecases

import (
	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/controller/dto"
	"certverify.io/application/repository"
	"certverify.io/application/utils"
	"certverify.io/entities"
	"certverify.io/infrastructure/database/repository/mongo"
	fileupload "certverify.io/infrastructure/file_upload"
	"certverify.io/infrastructure/logger"
	"go.mongodb.org/mongo-driver/bson"
)

type CertificateWithLink struct {
	entities.Certificate
	DownloadURL          *string `json:"downloadURL,omitempty"`
}

func listOptions(pagination *dto.PaginationDTO) *mongo.FindOptions {
	skip, limit := pagination.Normalise()
	var sort interface{} = bson.D{{Key: "issueDate", Value: -1}}
	return &mongo.FindOptions{Sort: &sort, Skip: &skip, Limit: &limit}
}

func ListCertificatesUseCase(ctx any, studentID string, pagination *dto.PaginationDTO) (*[]entities.Certificate, error) {
	filter := map[string]interface{}{}
	if studentID != "" {
		filter["studentID"] = studentID
	}
	certificates, err := repository.CertificateRepo().FindMany(utils.RequestContext(ctx), filter, listOptions(pagination))
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	return certificates, nil
}

// StudentCertificatesUseCase lists a student's certificates with short lived
// download links for any uploaded documents.
func StudentCertificatesUseCase(ctx any, userID string, pagination *dto.PaginationDTO) ([]CertificateWithLink, error) {
	reqCtx := utils.RequestContext(ctx)
	student, err := repository.UserRepo().FindByID(reqCtx, userID)
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	if student == nil || student.StudentID == nil {
		return []CertificateWithLink{}, nil
	}
	certificates, err := repository.CertificateRepo().FindMany(reqCtx, map[string]interface{}{
		"studentID": *student.StudentID,
	}, listOptions(pagination))
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}

	out := make([]CertificateWithLink, 0, len(*certificates))
	for _, certificate := range *certificates {
		item := CertificateWithLink{Certificate: certificate}
		if certificate.FileKey != nil {
			url, err := fileupload.FileUploader.GenerateDownloadURL(*certificate.FileKey)
			if err != nil {
				logger.Warning("could not sign certificate download url", logger.LoggerOptions{
					Key:  "certificateNumber",
					Data: certificate.CertificateNumber,
				})
			} else {
				item.DownloadURL = url
			}
		}
		out = append(out, item)
	}
	return out, nil
}

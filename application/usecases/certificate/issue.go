package certificate_usecases

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/application/repository"
	"certverify.io/application/utils"
	"certverify.io/entities"
	fileupload "certverify.io/infrastructure/file_upload"
	"certverify.io/infrastructure/ledger"
	"certverify.io/infrastructure/logger"
	messagequeue "certverify.io/infrastructure/message_queue"
	queue_tasks "certverify.io/infrastructure/message_queue/tasks"
	mq_types "certverify.io/infrastructure/message_queue/types"
)

// NewCertificateNumber returns a number of the form CERT-<year>-<8 hex>.
func NewCertificateNumber(at time.Time) string {
	id := strings.ToUpper(strings.ReplaceAll(utils.GenerateUUIDString(), "-", ""))
	return fmt.Sprintf("CERT-%d-%s", at.Year(), id[:8])
}

func documentKey(certificateNumber string) string {
	return fmt.Sprintf("certificates/%s.pdf", certificateNumber)
}

func IssueCertificateUseCase(ctx any, adminID string, payload *dto.IssueCertificateDTO) (*dto.IssuedCertificateResponse, error) {
	reqCtx := utils.RequestContext(ctx)
	student, err := repository.UserRepo().FindOneByFilter(reqCtx, map[string]interface{}{
		"role":      constants.RoleStudent,
		"studentID": payload.StudentID,
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	if student == nil {
		apperrors.NotFoundError(ctx, fmt.Sprintf("no student with id %s", payload.StudentID))
		return nil, errors.New("student not found")
	}

	issueDate := time.Now().UTC()
	if payload.IssueDate != nil {
		issueDate = payload.IssueDate.UTC()
	}
	certificate := entities.Certificate{
		CertificateNumber: NewCertificateNumber(issueDate),
		StudentID:         payload.StudentID,
		StudentName:       student.Name,
		StudentEmail:      student.Email,
		Course:            strings.TrimSpace(payload.Course),
		Grade:             strings.TrimSpace(payload.Grade),
		Institution:       strings.TrimSpace(payload.Institution),
		IssueDate:         issueDate,
		IssuedBy:          adminID,
	}
	certificate.DocumentHash = certificate.ComputeDocumentHash()

	entry, err := ledger.Default().Record(reqCtx, certificate.CertificateNumber, certificate.DocumentHash)
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	certificate.TxHash = entry.TxHash
	certificate.BlockNumber = entry.BlockNumber

	var uploadURL *string
	if payload.HasDocument {
		key := documentKey(certificate.CertificateNumber)
		certificate.FileKey = &key
		uploadURL, err = fileupload.FileUploader.GenerateUploadURL(key)
		if err != nil {
			apperrors.ExternalDependencyError(ctx, "azure-blob", "500", err)
			return nil, err
		}
	}

	created, err := repository.CertificateRepo().CreateOne(reqCtx, certificate)
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}

	notify(created.StudentEmail, "Your certificate has been issued", "certificate_issued", map[string]any{
		"StudentName":       created.StudentName,
		"Institution":       created.Institution,
		"Course":            created.Course,
		"CertificateNumber": created.CertificateNumber,
		"Grade":             created.Grade,
		"TxHash":            created.TxHash,
	})

	logger.Info("certificate issued", logger.LoggerOptions{
		Key:  "certificateNumber",
		Data: created.CertificateNumber,
	}, logger.LoggerOptions{
		Key:  "blockNumber",
		Data: created.BlockNumber,
	})
	return &dto.IssuedCertificateResponse{
		CertificateNumber: created.CertificateNumber,
		DocumentHash:      created.DocumentHash,
		TxHash:            created.TxHash,
		BlockNumber:       created.BlockNumber,
		UploadURL:         uploadURL,
	}, nil
}

func RevokeCertificateUseCase(ctx any, certificateNumber string, payload *dto.RevokeCertificateDTO) error {
	reqCtx := utils.RequestContext(ctx)
	certRepo := repository.CertificateRepo()
	certificate, err := certRepo.FindOneByFilter(reqCtx, map[string]interface{}{"certificateNumber": certificateNumber})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return err
	}
	if certificate == nil {
		apperrors.NotFoundError(ctx, "certificate not found")
		return errors.New("certificate not found")
	}
	if certificate.Revoked {
		apperrors.ClientError(ctx, "certificate is already revoked", nil, &constants.CERTIFICATE_REVOKED)
		return errors.New("already revoked")
	}
	_, err = certRepo.UpdatePartialByFilter(reqCtx, map[string]interface{}{"certificateNumber": certificateNumber}, map[string]interface{}{
		"revoked":       true,
		"revokedReason": payload.Reason,
		"revokedAt":     time.Now(),
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return err
	}
	notify(certificate.StudentEmail, "Your certificate has been revoked", "certificate_revoked", map[string]any{
		"StudentName":       certificate.StudentName,
		"CertificateNumber": certificate.CertificateNumber,
		"Course":            certificate.Course,
		"Reason":            payload.Reason,
	})
	return nil
}

// notify queues an email. Failing to queue never fails the request.
func notify(to string, subject string, template string, opts map[string]any) {
	opts["SupportEmail"] = constants.SUPPORT_EMAIL
	payload, err := json.Marshal(queue_tasks.EmailPayload{
		To:       to,
		Subject:  subject,
		Template: template,
		Opts:     opts,
	})
	if err != nil {
		logger.Error("could not marshal email payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	if err := messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Name:     queue_tasks.HandleEmailDeliveryTaskName,
		Payload:  payload,
		Priority: mq_types.Medium,
	}); err != nil {
		logger.Warning("certificate email not queued", logger.LoggerOptions{
			Key:  "template",
			Data: template,
		})
	}
}

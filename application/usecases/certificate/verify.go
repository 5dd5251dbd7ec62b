package certificate_usecases

import (
	"errors"
	"strings"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/application/repository"
	"certverify.io/application/utils"
	"certverify.io/entities"
	"certverify.io/infrastructure/database/repository/mongo"
	"certverify.io/infrastructure/ledger"
	"certverify.io/infrastructure/logger"
	"go.mongodb.org/mongo-driver/bson"
)

// DetermineStatus classifies a certificate against its ledger anchor. A
// record whose fields no longer hash to the anchored value is tampered, even
// if it was also revoked.
func DetermineStatus(certificate *entities.Certificate, entry *entities.LedgerEntry) string {
	if certificate == nil {
		return constants.VerificationNotFound
	}
	recomputed := certificate.ComputeDocumentHash()
	if recomputed != certificate.DocumentHash || !ledger.Verify(entry, recomputed) {
		return constants.VerificationTampered
	}
	if entry.CertificateNumber != certificate.CertificateNumber {
		return constants.VerificationTampered
	}
	if certificate.Revoked {
		return constants.VerificationRevoked
	}
	return constants.VerificationValid
}

var ErrEmptyVerificationQuery = errors.New("empty verification query")

func trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func VerifyCertificateUseCase(ctx any, verifierID string, payload *dto.VerifyCertificateDTO) (*dto.VerificationResult, error) {
	reqCtx := utils.RequestContext(ctx)
	filter := map[string]interface{}{}
	query := ""
	if number := trimmed(payload.CertificateNumber); number != "" {
		query = number
		filter["certificateNumber"] = query
	} else if hash := trimmed(payload.DocumentHash); hash != "" {
		query = strings.ToLower(hash)
		filter["documentHash"] = query
	} else {
		apperrors.ClientError(ctx, "a certificate number or document hash is required", nil, nil)
		return nil, ErrEmptyVerificationQuery
	}

	certificate, err := repository.CertificateRepo().FindOneByFilter(reqCtx, filter)
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}

	var entry *entities.LedgerEntry
	if certificate != nil && certificate.TxHash != "" {
		entry, err = ledger.Default().Lookup(reqCtx, certificate.TxHash)
		if err != nil && !errors.Is(err, ledger.ErrEntryNotFound) {
			apperrors.FatalServerError(ctx, err)
			return nil, err
		}
	}

	status := DetermineStatus(certificate, entry)
	verificationLog := entities.VerificationLog{
		VerifierID: verifierID,
		Query:      query,
		Status:     status,
	}
	if certificate != nil {
		verificationLog.CertificateNumber = &certificate.CertificateNumber
	}
	if _, err := repository.VerificationLogRepo().CreateOne(reqCtx, verificationLog); err != nil {
		logger.Warning("could not record verification", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}

	result := &dto.VerificationResult{Status: status}
	if certificate != nil {
		result.Certificate = certificate
	}
	if entry != nil {
		result.LedgerEntry = entry
	}
	return result, nil
}

func VerificationHistoryUseCase(ctx any, verifierID string, pagination *dto.PaginationDTO) (*[]entities.VerificationLog, error) {
	skip, limit := pagination.Normalise()
	var sort interface{} = bson.D{{Key: "verifiedAt", Value: -1}}
	logs, err := repository.VerificationLogRepo().FindMany(utils.RequestContext(ctx), map[string]interface{}{
		"verifierID": verifierID,
	}, &mongo.FindOptions{Sort: &sort, Skip: &skip, Limit: &limit})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	return logs, nil
}

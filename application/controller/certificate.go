package controller

import (
	"net/http"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/application/interfaces"
	certificate_usecases "certverify.io/application/usecases/certificate"
	server_response "certverify.io/infrastructure/serverResponse"
	"certverify.io/infrastructure/validator"
)

func IssueCertificate(ctx *interfaces.ApplicationContext[dto.IssueCertificateDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	result, err := certificate_usecases.IssueCertificateUseCase(ctx.Ctx, ctx.GetStringContextData("UserID"), ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "certificate issued", result, nil, nil)
}

func ListCertificates(ctx *interfaces.ApplicationContext[dto.PaginationDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	certificates, err := certificate_usecases.ListCertificatesUseCase(ctx.Ctx, ctx.GetStringQuery("studentID"), ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "certificates fetched", certificates, nil, nil)
}

func RevokeCertificate(ctx *interfaces.ApplicationContext[dto.RevokeCertificateDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	number := ctx.GetStringParameter("number")
	if err := validator.ValidatorInstance.ValidateValue(number, "required,startswith=CERT-"); err != nil {
		apperrors.ValidationFailedError(ctx.Ctx, &[]error{err})
		return
	}
	if err := certificate_usecases.RevokeCertificateUseCase(ctx.Ctx, number, ctx.Body); err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "certificate revoked", nil, nil, nil)
}

func StudentCertificates(ctx *interfaces.ApplicationContext[dto.PaginationDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	certificates, err := certificate_usecases.StudentCertificatesUseCase(ctx.Ctx, ctx.GetStringContextData("UserID"), ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "certificates fetched", certificates, nil, nil)
}

func VerifyCertificate(ctx *interfaces.ApplicationContext[dto.VerifyCertificateDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	result, err := certificate_usecases.VerifyCertificateUseCase(ctx.Ctx, ctx.GetStringContextData("UserID"), ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "verification complete", result, nil, verificationResponseCode(result.Status))
}

func VerificationHistory(ctx *interfaces.ApplicationContext[dto.PaginationDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	logs, err := certificate_usecases.VerificationHistoryUseCase(ctx.Ctx, ctx.GetStringContextData("UserID"), ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "verification history fetched", logs, nil, nil)
}

func verificationResponseCode(status string) *uint {
	switch status {
	case constants.VerificationRevoked:
		return &constants.CERTIFICATE_REVOKED
	case constants.VerificationTampered:
		return &constants.CERTIFICATE_TAMPERED
	case constants.VerificationNotFound:
		return &constants.CERTIFICATE_NOT_FOUND
	}
	return nil
}

package controller

import (
	"net/http"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/application/interfaces"
	biometric_usecases "certverify.io/application/usecases/biometric"
	server_response "certverify.io/infrastructure/serverResponse"
	"certverify.io/infrastructure/validator"
)

func EnrollBiometric(ctx *interfaces.ApplicationContext[dto.EnrollBiometricDTO]) {
	if err := dto.ValidateEnrollBiometricDTO(ctx.Body); err != nil {
		apperrors.ClientError(ctx.Ctx, err.Error(), nil, nil)
		return
	}
	result, err := biometric_usecases.EnrollUseCase(ctx.Ctx, ctx.GetStringContextData("UserID"), ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "face enrolled", result, nil, &constants.BIOMETRIC_ENROLLED)
}

func ExtractDescriptor(ctx *interfaces.ApplicationContext[dto.ExtractDescriptorDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	result, err := biometric_usecases.ExtractDescriptorUseCase(ctx.Ctx, ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "descriptor extracted", result, nil, nil)
}

func ClearBiometric(ctx *interfaces.ApplicationContext[any]) {
	if err := biometric_usecases.ClearEnrollmentUseCase(ctx.Ctx, ctx.GetStringContextData("UserID")); err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "biometric login disabled", nil, nil, nil)
}

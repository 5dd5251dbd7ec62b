package controller

import (
	"net/http"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/application/interfaces"
	auth_usecases "certverify.io/application/usecases/auth"
	server_response "certverify.io/infrastructure/serverResponse"
	"certverify.io/infrastructure/validator"
)

func Signup(ctx *interfaces.ApplicationContext[dto.SignupDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	user, err := auth_usecases.SignupUseCase(ctx.Ctx, ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "account created", user, nil, &constants.ACCOUNT_CREATED)
}

func Login(ctx *interfaces.ApplicationContext[dto.LoginDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	result, err := auth_usecases.LoginUseCase(ctx.Ctx, ctx.Body, ctx.UserAgent, ctx.DeviceID)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "login successful", result, nil, nil)
}

func Logout(ctx *interfaces.ApplicationContext[any]) {
	auth_usecases.LogoutUseCase(ctx.GetStringContextData("UserID"))
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "logged out", nil, nil, nil)
}

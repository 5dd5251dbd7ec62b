package controller

import (
	"net/http"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/controller/dto"
	"certverify.io/application/interfaces"
	user_usecases "certverify.io/application/usecases/user"
	server_response "certverify.io/infrastructure/serverResponse"
	"certverify.io/infrastructure/validator"
)

func FetchProfile(ctx *interfaces.ApplicationContext[any]) {
	profile, err := user_usecases.FetchProfileUseCase(ctx.Ctx, ctx.GetStringContextData("UserID"))
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "profile fetched", profile, nil, nil)
}

func ListStudents(ctx *interfaces.ApplicationContext[dto.PaginationDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	students, err := user_usecases.ListStudentsUseCase(ctx.Ctx, ctx.Body)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "students fetched", students, nil, nil)
}

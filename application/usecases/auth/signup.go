package auth_usecases

import (
	"crypto/subtle"
	"errors"
	"os"
	"strings"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/application/repository"
	biometric_usecases "certverify.io/application/usecases/biometric"
	"certverify.io/application/utils"
	"certverify.io/entities"
	"certverify.io/infrastructure/biometric"
	"certverify.io/infrastructure/cryptography"
	"certverify.io/infrastructure/logger"
)

var ErrAdminKeyInvalid = errors.New("admin signup key invalid")

// AdminKeyValid compares the supplied key with ADMIN_SIGNUP_KEY. Admin signup
// is closed when the variable is unset.
func AdminKeyValid(supplied *string) bool {
	expected := os.Getenv("ADMIN_SIGNUP_KEY")
	if expected == "" || supplied == nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(*supplied)) == 1
}

func SignupUseCase(ctx any, payload *dto.SignupDTO) (*entities.User, error) {
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	reqCtx := utils.RequestContext(ctx)

	if payload.Role == constants.RoleAdmin && !AdminKeyValid(payload.AdminKey) {
		apperrors.AuthorizationError(ctx, "a valid admin key is required to create an admin account")
		return nil, ErrAdminKeyInvalid
	}
	if payload.HasFaceData() && payload.Role != constants.RoleStudent {
		apperrors.ClientError(ctx, "face enrollment is only available to students", nil, nil)
		return nil, errors.New("face data on non student signup")
	}

	userRepo := repository.UserRepo()
	exists, err := userRepo.CountDocs(reqCtx, map[string]any{
		"email": payload.Email,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if exists != 0 {
		apperrors.EntityAlreadyExistsError(ctx, "User with email already exists")
		return nil, errors.New("user exists")
	}

	descriptors, err := biometric_usecases.BuildEnrollment(reqCtx, biometric.BiometricService, payload.FaceDescriptors, payload.FaceImages)
	if err != nil {
		biometric_usecases.RespondEnrollmentError(ctx, err)
		return nil, err
	}

	hashedPassword, err := cryptography.CryptoHahser.HashString(payload.Password, nil)
	if err != nil {
		logger.Error("an error occured while hashing user password", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}

	user := entities.User{
		Name:        strings.TrimSpace(payload.Name),
		Email:       payload.Email,
		Password:    string(hashedPassword),
		Role:        payload.Role,
		StudentID:   payload.StudentID,
		Institution: payload.Institution,
	}
	if len(descriptors) > 0 {
		user.BiometricData = biometric.NewEnrollment(descriptors...).Vectors()
		user.BiometricEnabled = true
	}

	created, err := userRepo.CreateOne(reqCtx, user)
	if err != nil {
		logger.Error("could not create user", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	logger.Info("user signed up", logger.LoggerOptions{
		Key:  "role",
		Data: created.Role,
	}, logger.LoggerOptions{
		Key:  "biometricEnabled",
		Data: created.BiometricEnabled,
	})
	return created, nil
}

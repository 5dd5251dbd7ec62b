package auth_usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/application/repository"
	biometric_usecases "certverify.io/application/usecases/biometric"
	"certverify.io/application/utils"
	"certverify.io/entities"
	"certverify.io/infrastructure/auth"
	"certverify.io/infrastructure/biometric"
	"certverify.io/infrastructure/cryptography"
	"certverify.io/infrastructure/logger"
	"certverify.io/infrastructure/useragent"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type loginUserStore interface {
	FindOneByFilter(ctx context.Context, filter map[string]interface{}, opts ...*options.FindOneOptions) (*entities.User, error)
	UpdatePartialByFilter(ctx context.Context, filter map[string]interface{}, payload map[string]interface{}) (int64, error)
}

var loginUsers = func() loginUserStore {
	return repository.UserRepo()
}

type LoginResult struct {
	Token string         `json:"token"`
	User  *entities.User `json:"user"`
}

// LoginUseCase checks the password, runs the face gate when it applies and
// starts a session. Every face gate failure gets the same response.
func LoginUseCase(ctx any, payload *dto.LoginDTO, userAgent string, deviceID string) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	reqCtx := utils.RequestContext(ctx)

	userRepo := loginUsers()
	user, err := userRepo.FindOneByFilter(reqCtx, map[string]interface{}{
		"email": email,
		"role":  payload.Role,
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	if user == nil || !cryptography.CryptoHahser.VerifyHashData(user.Password, payload.Password) {
		apperrors.AuthenticationError(ctx, ErrInvalidCredentials.Error())
		return nil, ErrInvalidCredentials
	}

	if biometric_usecases.FaceGateRequired(user, &payload.FaceCredentialsDTO) {
		result, err := biometric_usecases.RunFaceGate(reqCtx, biometric.BiometricService, &payload.FaceCredentialsDTO, user.BiometricData)
		if err != nil {
			var distance *float64
			if result.Compared > 0 {
				distance = &result.BestDistance
			}
			apperrors.FaceVerificationError(ctx, err, distance)
			return nil, err
		}
	}

	now := time.Now()
	expiresIn := time.Hour * constants.SESSION_TTL_HOURS
	token, err := auth.GenerateAuthToken(auth.ClaimsData{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(expiresIn).Unix(),
		UserAgent: userAgent,
		DeviceID:  deviceID,
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	if err := auth.StartSession(user.ID, *token, expiresIn); err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}

	device := LoginDeviceFromUserAgent(userAgent, now)
	if _, err := userRepo.UpdatePartialByFilter(reqCtx, map[string]interface{}{"_id": user.ID}, map[string]interface{}{
		"lastLoginDevice": device,
	}); err != nil {
		logger.Warning("could not record login device", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
	user.LastLoginDevice = device

	return &LoginResult{Token: *token, User: user}, nil
}

func LoginDeviceFromUserAgent(userAgent string, at time.Time) *entities.LoginDevice {
	parsed := useragent.ParseUserAgent(userAgent)
	return &entities.LoginDevice{
		Name:      parsed.Device,
		OS:        strings.TrimSpace(parsed.OS + " " + parsed.OSVersion),
		Browser:   parsed.Name,
		Mobile:    parsed.Mobile,
		LastLogin: at,
	}
}

func LogoutUseCase(userID string) {
	auth.SignOutUser(userID, "user logged out")
}

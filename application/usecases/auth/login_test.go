package auth_usecases

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/entities"
	"certverify.io/infrastructure/biometric"
	"certverify.io/infrastructure/cryptography"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeUsers struct {
	user    *entities.User
	updates int
}

func (f *fakeUsers) FindOneByFilter(ctx context.Context, filter map[string]interface{}, opts ...*options.FindOneOptions) (*entities.User, error) {
	return f.user, nil
}

func (f *fakeUsers) UpdatePartialByFilter(ctx context.Context, filter map[string]interface{}, payload map[string]interface{}) (int64, error) {
	f.updates++
	return 1, nil
}

func useUsers(t *testing.T, users *fakeUsers) {
	t.Helper()
	previous := loginUsers
	loginUsers = func() loginUserStore { return users }
	t.Cleanup(func() { loginUsers = previous })

	previousSvc := biometric.BiometricService
	biometric.BiometricService = &biometric.LocalFaceService{}
	t.Cleanup(func() { biometric.BiometricService = previousSvc })
}

func filled(v float64) []any {
	out := make([]any, biometric.DescriptorLength)
	for i := range out {
		out[i] = v
	}
	return out
}

func filledVector(v float64) []float64 {
	out := make([]float64, biometric.DescriptorLength)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestLoginFaceGateFailuresLookAlike(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hash, err := cryptography.CryptoHahser.HashString("passw0rdX", nil)
	require.NoError(t, err)
	badImage := "abc"

	tests := []struct {
		name    string
		stored  any
		creds   dto.FaceCredentialsDTO
		wantErr error
	}{
		{"malformed descriptor", [][]float64{filledVector(0.3)}, dto.FaceCredentialsDTO{FaceDescriptor: []any{0.1, 0.2}}, biometric.ErrCandidateMalformed},
		{"unusable image", [][]float64{filledVector(0.3)}, dto.FaceCredentialsDTO{FaceImage: &badImage}, biometric.ErrCandidateMalformed},
		{"no enrollment", nil, dto.FaceCredentialsDTO{FaceDescriptor: filled(0.3)}, biometric.ErrNoEnrollmentData},
		{"different face", [][]float64{filledVector(0.3)}, dto.FaceCredentialsDTO{FaceDescriptor: filled(0.9)}, biometric.ErrBiometricMismatch},
	}

	bodies := map[string]bool{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUsers{user: &entities.User{
				ID:               "user-1",
				Email:            "ada@example.com",
				Password:         string(hash),
				Role:             constants.RoleStudent,
				BiometricEnabled: true,
				BiometricData:    tt.stored,
			}}
			useUsers(t, users)

			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)
			ctx.Request = httptest.NewRequest(http.MethodPost, "/auth/login", nil)

			result, err := LoginUseCase(ctx, &dto.LoginDTO{
				Email:              "ada@example.com",
				Password:           "passw0rdX",
				Role:               constants.RoleStudent,
				FaceCredentialsDTO: tt.creds,
			}, "Mozilla/5.0", "device-1")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Zero(t, users.updates, "no login is recorded")

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, apperrors.FaceVerificationMessage, body["message"])
			bodies[rec.Body.String()] = true
		})
	}
	assert.Len(t, bodies, 1, "every face gate failure returns the same body")
}

func TestLoginRejectsWrongPasswordBeforeFaceGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hash, err := cryptography.CryptoHahser.HashString("passw0rdX", nil)
	require.NoError(t, err)
	users := &fakeUsers{user: &entities.User{ID: "user-1", Password: string(hash), Role: constants.RoleStudent, BiometricEnabled: true}}
	useUsers(t, users)

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/auth/login", nil)

	_, err = LoginUseCase(ctx, &dto.LoginDTO{Email: "ada@example.com", Password: "wrong", Role: constants.RoleStudent}, "Mozilla/5.0", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrInvalidCredentials.Error())
}

package auth_usecases

import (
	"os"

	"certverify.io/application/utils"
	"certverify.io/infrastructure/auth"
	"certverify.io/infrastructure/logger"
)

// UserAuthResult represents the result of user authentication
type UserAuthResult struct {
	IsAuthenticated bool
	UserID          string
	Email           string
	Name            string
	Role            string
	ErrorMessage    string
}

// IsUserSignedIn validates the bearer token against the live session and the
// roles allowed on the route. An empty roles list allows any role.
func IsUserSignedIn(authToken string, roles []string) UserAuthResult {
	result := UserAuthResult{
		IsAuthenticated: false,
	}

	if authToken == "" {
		result.ErrorMessage = "missing auth token"
		return result
	}

	validAccessToken, err := auth.DecodeAuthToken(authToken)
	if err != nil {
		result.ErrorMessage = "this session has expired"
		return result
	}

	claims, err := auth.ClaimsFromToken(validAccessToken)
	if err != nil {
		result.ErrorMessage = "unauthorised access"
		return result
	}

	if claims.Issuer != os.Getenv("JWT_ISSUER") {
		logger.Warning("attempt to access account with tampered jwt", logger.LoggerOptions{
			Key:  "issuer",
			Data: claims.Issuer,
		})
		result.ErrorMessage = "unauthorised access"
		return result
	}

	if len(roles) > 0 && !utils.HasItemString(&roles, claims.Role) {
		result.ErrorMessage = "you do not have access to this resource"
		return result
	}

	if !auth.SessionIsActive(claims.UserID, authToken) {
		result.ErrorMessage = "this session has expired"
		return result
	}

	result.IsAuthenticated = true
	result.UserID = claims.UserID
	result.Email = claims.Email
	result.Name = claims.Name
	result.Role = claims.Role
	return result
}

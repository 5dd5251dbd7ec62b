package middlewares

import (
	"strings"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/interfaces"
	authusecase "certverify.io/application/usecases/auth"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(ctx *interfaces.ApplicationContext[any]) string {
	header := ctx.GetHeader("Authorization")
	if header == nil {
		return ""
	}
	scheme, token, found := strings.Cut(*header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func UserAuthenticationMiddleware(ctx *interfaces.ApplicationContext[any], roles []string) (*interfaces.ApplicationContext[any], bool) {
	authResult := authusecase.IsUserSignedIn(BearerToken(ctx), roles)

	if !authResult.IsAuthenticated {
		apperrors.AuthenticationError(ctx.Ctx, authResult.ErrorMessage)
		return nil, false
	}

	ctx.SetContextData("UserID", authResult.UserID)
	ctx.SetContextData("Email", authResult.Email)
	ctx.SetContextData("Name", authResult.Name)
	ctx.SetContextData("Role", authResult.Role)

	return ctx, true
}

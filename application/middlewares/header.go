package middlewares

import (
	"errors"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/interfaces"
	"certverify.io/infrastructure/useragent"
)

func UserAgentMiddleware(ctx *interfaces.ApplicationContext[any], clientIP string) (*interfaces.ApplicationContext[any], bool) {
	agent := ctx.GetHeader("User-Agent")
	if agent == nil {
		apperrors.ClientError(ctx.Ctx, "user agent header missing", []error{errors.New("user agent header missing")}, nil)
		return nil, false
	}
	if !useragent.ParseUserAgent(*agent).Supported() {
		apperrors.UnsupportedUserAgent(ctx.Ctx)
		return nil, false
	}
	ctx.UserAgent = *agent
	if deviceID := ctx.GetHeader("X-Device-Id"); deviceID != nil {
		ctx.DeviceID = *deviceID
	}
	ctx.ClientIP = clientIP
	return ctx, true
}

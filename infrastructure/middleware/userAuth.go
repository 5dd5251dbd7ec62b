package middlewares

import (
	"certverify.io/application/interfaces"
	"certverify.io/application/middlewares"
	"github.com/gin-gonic/gin"
)

// UserAuthenticationMiddleware admits signed in users holding one of roles.
func UserAuthenticationMiddleware(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		appContext := &interfaces.ApplicationContext[any]{
			Ctx:    ctx,
			Keys:   map[string]any{},
			Header: ctx.Request.Header,
		}
		if saved, ok := ctx.Value("AppContext").(*interfaces.ApplicationContext[any]); ok {
			appContext.UserAgent = saved.UserAgent
			appContext.DeviceID = saved.DeviceID
			appContext.ClientIP = saved.ClientIP
		}
		appContext, next := middlewares.UserAuthenticationMiddleware(appContext, roles)
		if next {
			ctx.Set("AppContext", appContext)
			ctx.Next()
		}
	}
}

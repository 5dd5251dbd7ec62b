package routev1

import (
	"certverify.io/application/controller"
	"certverify.io/application/controller/dto"
	middlewares "certverify.io/infrastructure/middleware"
	"certverify.io/infrastructure/ratelimit"
	"github.com/gin-gonic/gin"
)

func AuthRouter(router *gin.RouterGroup) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/signup", func(ctx *gin.Context) {
			body, ok := bindJSON[dto.SignupDTO](ctx)
			if !ok {
				return
			}
			controller.Signup(appContextFor(ctx, body))
		})

		authRouter.POST("/login", ratelimit.LoginAttemptsPerIP(), func(ctx *gin.Context) {
			body, ok := bindJSON[dto.LoginDTO](ctx)
			if !ok {
				return
			}
			controller.Login(appContextFor(ctx, body))
		})

		authRouter.POST("/logout", middlewares.UserAuthenticationMiddleware(), func(ctx *gin.Context) {
			controller.Logout(appContextFor[any](ctx, nil))
		})
	}
}

package routev1

import (
	"certverify.io/application/constants"
	"certverify.io/application/controller"
	"certverify.io/application/controller/dto"
	middlewares "certverify.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func BiometricRouter(router *gin.RouterGroup) {
	biometricRouter := router.Group("/biometric")
	{
		biometricRouter.POST("/enroll", middlewares.UserAuthenticationMiddleware(constants.RoleStudent), func(ctx *gin.Context) {
			body, ok := bindJSON[dto.EnrollBiometricDTO](ctx)
			if !ok {
				return
			}
			controller.EnrollBiometric(appContextFor(ctx, body))
		})

		biometricRouter.POST("/descriptor", middlewares.UserAuthenticationMiddleware(), func(ctx *gin.Context) {
			body, ok := bindJSON[dto.ExtractDescriptorDTO](ctx)
			if !ok {
				return
			}
			controller.ExtractDescriptor(appContextFor(ctx, body))
		})

		biometricRouter.DELETE("", middlewares.UserAuthenticationMiddleware(constants.RoleStudent), func(ctx *gin.Context) {
			controller.ClearBiometric(appContextFor[any](ctx, nil))
		})
	}
}

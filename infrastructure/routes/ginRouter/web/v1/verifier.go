package routev1

import (
	"certverify.io/application/constants"
	"certverify.io/application/controller"
	"certverify.io/application/controller/dto"
	middlewares "certverify.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func VerifierRouter(router *gin.RouterGroup) {
	verifierRouter := router.Group("/verifier")
	verifierRouter.Use(middlewares.UserAuthenticationMiddleware(constants.RoleVerifier, constants.RoleAdmin))
	{
		verifierRouter.POST("/verify", func(ctx *gin.Context) {
			body, ok := bindJSON[dto.VerifyCertificateDTO](ctx)
			if !ok {
				return
			}
			controller.VerifyCertificate(appContextFor(ctx, body))
		})

		verifierRouter.GET("/history", func(ctx *gin.Context) {
			body, ok := bindQuery[dto.PaginationDTO](ctx)
			if !ok {
				return
			}
			controller.VerificationHistory(appContextFor(ctx, body))
		})
	}
}

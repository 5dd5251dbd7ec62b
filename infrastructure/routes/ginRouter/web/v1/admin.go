package routev1

import (
	"certverify.io/application/constants"
	"certverify.io/application/controller"
	"certverify.io/application/controller/dto"
	middlewares "certverify.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func AdminRouter(router *gin.RouterGroup) {
	adminRouter := router.Group("/admin")
	adminRouter.Use(middlewares.UserAuthenticationMiddleware(constants.RoleAdmin))
	{
		adminRouter.POST("/certificates", func(ctx *gin.Context) {
			body, ok := bindJSON[dto.IssueCertificateDTO](ctx)
			if !ok {
				return
			}
			controller.IssueCertificate(appContextFor(ctx, body))
		})

		adminRouter.GET("/certificates", func(ctx *gin.Context) {
			body, ok := bindQuery[dto.PaginationDTO](ctx)
			if !ok {
				return
			}
			controller.ListCertificates(appContextFor(ctx, body))
		})

		adminRouter.PATCH("/certificates/:number/revoke", func(ctx *gin.Context) {
			body, ok := bindJSON[dto.RevokeCertificateDTO](ctx)
			if !ok {
				return
			}
			controller.RevokeCertificate(appContextFor(ctx, body))
		})

		adminRouter.GET("/students", func(ctx *gin.Context) {
			body, ok := bindQuery[dto.PaginationDTO](ctx)
			if !ok {
				return
			}
			controller.ListStudents(appContextFor(ctx, body))
		})

		adminRouter.GET("/biometric/stats", func(ctx *gin.Context) {
			controller.BiometricStats(appContextFor[any](ctx, nil))
		})
	}
}

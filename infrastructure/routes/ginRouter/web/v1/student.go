package routev1

import (
	"certverify.io/application/constants"
	"certverify.io/application/controller"
	"certverify.io/application/controller/dto"
	middlewares "certverify.io/infrastructure/middleware"
	"github.com/gin-gonic/gin"
)

func StudentRouter(router *gin.RouterGroup) {
	studentRouter := router.Group("/student")
	studentRouter.Use(middlewares.UserAuthenticationMiddleware(constants.RoleStudent))
	{
		studentRouter.GET("/profile", func(ctx *gin.Context) {
			controller.FetchProfile(appContextFor[any](ctx, nil))
		})

		studentRouter.GET("/certificates", func(ctx *gin.Context) {
			body, ok := bindQuery[dto.PaginationDTO](ctx)
			if !ok {
				return
			}
			controller.StudentCertificates(appContextFor(ctx, body))
		})
	}
}

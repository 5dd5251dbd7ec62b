package infrastructure

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/controller"
	"certverify.io/application/interfaces"
	"certverify.io/infrastructure/logger"
	middlewares "certverify.io/infrastructure/middleware"
	ratelimit "certverify.io/infrastructure/ratelimit"
	webRoutev1 "certverify.io/infrastructure/routes/ginRouter/web/v1"
	startup "certverify.io/infrastructure/startUp"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type serverInterface interface {
	Start()
}

type ginServer struct{}

func allowedOrigins() []string {
	origins := []string{}
	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 && os.Getenv("GIN_MODE") == "debug" {
		origins = append(origins, "http://localhost:5173")
	}
	return origins
}

func (s *ginServer) Start() {
	startup.StartServices()
	defer startup.CleanUpServices()

	server := gin.Default()
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Device-Id", "User-Agent"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	server.Use(cors.New(corsConfig))
	server.Use(ratelimit.TokenBucketPerIP())
	server.Use(logger.RequestMetricMonitor.RequestMetricMiddleware())
	// captures arrive as base64 data urls inside json bodies
	server.MaxMultipartMemory = 15 << 20

	api := server.Group("/api")
	api.Use(middlewares.UserAgentMiddleware())

	routerV1 := api.Group("/v1")
	{
		webRoutev1.AuthRouter(routerV1)
		webRoutev1.BiometricRouter(routerV1)
		webRoutev1.AdminRouter(routerV1)
		webRoutev1.StudentRouter(routerV1)
		webRoutev1.VerifierRouter(routerV1)
	}

	server.GET("/ping", func(ctx *gin.Context) {
		controller.Ping(&interfaces.ApplicationContext[any]{Ctx: ctx})
	})
	server.GET("/metrics", logger.RequestMetricMonitor.Handler())

	server.NoRoute(func(ctx *gin.Context) {
		apperrors.NotFoundError(ctx, fmt.Sprintf("%s %s does not exist", ctx.Request.Method, ctx.Request.URL))
	})

	gin_mode := os.Getenv("GIN_MODE")
	port := os.Getenv("PORT")
	if gin_mode != "debug" && gin_mode != "release" {
		panic(fmt.Sprintf("invalid gin mode used - %s", gin_mode))
	}
	logger.Info(fmt.Sprintf("Server starting on PORT %s", port))
	if err := server.Run(fmt.Sprintf(":%s", port)); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}

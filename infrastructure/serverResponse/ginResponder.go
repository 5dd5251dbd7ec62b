package server_response

import (
	"os"

	"certverify.io/infrastructure/logger"
	"github.com/gin-gonic/gin"
)

type ginResponder struct{}

// Sends a JSON payload to the client and aborts the handler chain
func (gr ginResponder) Respond(ctx interface{}, code int, message string, payload interface{}, errs []error, response_code *uint) {
	ginCtx, ok := (ctx).(*gin.Context)
	if !ok {
		logger.Error("could not transform *interface{} to gin.Context in serverResponse package", logger.LoggerOptions{
			Key:  "payload",
			Data: ctx,
		})
		return
	}
	ginCtx.Abort()
	response := map[string]any{
		"message": message,
		"body":    payload,
	}
	if response_code != nil {
		response["response_code"] = *response_code
	}
	if os.Getenv("ENV") != "prod" {
		logger.Info("response", logger.LoggerOptions{
			Key:  "message",
			Data: message,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: errs,
		})
	}
	if errs != nil {
		errMsgs := []string{}
		for _, err := range errs {
			errMsgs = append(errMsgs, err.Error())
		}
		response["errors"] = errMsgs
	}
	ginCtx.JSON(code, response)
}

package apperrors

import (
	"fmt"
	"net/http"

	"certverify.io/infrastructure/logger"
	server_response "certverify.io/infrastructure/serverResponse"
)

// FaceVerificationMessage is the only thing a client learns about a failed face check.
const FaceVerificationMessage = "face verification failed"

func NotFoundError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusNotFound, message, nil, nil, nil)
}

func ValidationFailedError(ctx interface{}, errMessages *[]error) {
	server_response.Responder.Respond(ctx, http.StatusUnprocessableEntity, "Payload validation failed", nil, *errMessages, nil)
}

func EntityAlreadyExistsError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusConflict, message, nil, nil, nil)
}

func AuthenticationError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusUnauthorized, message, nil, nil, nil)
}

func AuthorizationError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusForbidden, message, nil, nil, nil)
}

// FaceVerificationError answers every biometric failure with the same body.
// The cause and distance stay in the server logs.
func FaceVerificationError(ctx interface{}, cause error, bestDistance *float64) {
	opts := []logger.LoggerOptions{{Key: "reason", Data: cause}}
	if bestDistance != nil {
		opts = append(opts, logger.LoggerOptions{Key: "best_distance", Data: *bestDistance})
	}
	logger.Warning("face verification rejected", opts...)
	server_response.Responder.Respond(ctx, http.StatusUnauthorized, FaceVerificationMessage, nil, nil, nil)
}

func ExternalDependencyError(ctx interface{}, serviceName string, statusCode string, err error) {
	logger.Error(err.Error(), logger.LoggerOptions{
		Key: fmt.Sprintf("error with %s. status code %s", serviceName, statusCode),
	})
	server_response.Responder.Respond(ctx, http.StatusServiceUnavailable,
		"Our service is temporarily down. Our team is working to fix it. Please check back later.", nil, nil, nil)
}

func ErrorProcessingPayload(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "Abnormal payload passed", nil, nil, nil)
}

func FatalServerError(ctx interface{}, err error) {
	logger.Error("fatal server error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusInternalServerError,
		"Our service is temporarily down. Our team is working to fix it. Please check back later.", nil, nil, nil)
}

func UnknownError(ctx interface{}, err error, responseCode *uint) {
	logger.Error("unknown error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusBadRequest,
		"Something went wrong somewhere. Please check back later.", nil, nil, responseCode)
}

func CustomError(ctx interface{}, msg string, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, msg, nil, nil, responseCode)
}

func UnsupportedUserAgent(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest,
		"unsupported user agent", nil, nil, nil)
}

func ClientError(ctx interface{}, msg string, errs []error, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, msg, nil, errs, responseCode)
}

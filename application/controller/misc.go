package controller

import (
	"net/http"

	"certverify.io/application/interfaces"
	"certverify.io/infrastructure/biometric"
	server_response "certverify.io/infrastructure/serverResponse"
)

func Ping(ctx *interfaces.ApplicationContext[any]) {
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "pong!", nil, nil, nil)
}

// BiometricStats reports gate decisions since start up.
func BiometricStats(ctx *interfaces.ApplicationContext[any]) {
	payload := map[string]any{}
	if svc, ok := biometric.BiometricService.(*biometric.LocalFaceService); ok {
		accepted, rejected, unenrolled := svc.GetStats()
		payload["accepted"] = accepted
		payload["rejected"] = rejected
		payload["unenrolled"] = unenrolled
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "biometric stats fetched", payload, nil, nil)
}

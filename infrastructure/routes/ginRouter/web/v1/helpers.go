package routev1

import (
	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/interfaces"
	"github.com/gin-gonic/gin"
)

// appContextFor copies the request scoped context into a typed one.
func appContextFor[T any](ctx *gin.Context, body *T) *interfaces.ApplicationContext[T] {
	appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
	params := map[string]any{}
	for _, p := range ctx.Params {
		params[p.Key] = p.Value
	}
	query := map[string]any{}
	for k, v := range ctx.Request.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}
	return &interfaces.ApplicationContext[T]{
		Ctx:       ctx,
		Body:      body,
		Keys:      appContext.Keys,
		Header:    ctx.Request.Header,
		Param:     params,
		Query:     query,
		UserAgent: appContext.UserAgent,
		DeviceID:  appContext.DeviceID,
		ClientIP:  appContext.ClientIP,
	}
}

func bindJSON[T any](ctx *gin.Context) (*T, bool) {
	var body T
	if err := ctx.ShouldBindJSON(&body); err != nil {
		apperrors.ErrorProcessingPayload(ctx)
		return nil, false
	}
	return &body, true
}

func bindQuery[T any](ctx *gin.Context) (*T, bool) {
	var body T
	if err := ctx.ShouldBindQuery(&body); err != nil {
		apperrors.ErrorProcessingPayload(ctx)
		return nil, false
	}
	return &body, true
}

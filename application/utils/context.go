package utils

import (
	"context"

	"github.com/gin-gonic/gin"
)

// RequestContext returns the context of the request behind a handler context.
func RequestContext(ctx any) context.Context {
	switch c := ctx.(type) {
	case *gin.Context:
		if c != nil && c.Request != nil {
			return c.Request.Context()
		}
	case context.Context:
		return c
	}
	return context.Background()
}

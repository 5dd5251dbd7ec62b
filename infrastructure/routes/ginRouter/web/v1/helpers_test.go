package routev1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"certverify.io/application/controller/dto"
	"certverify.io/application/interfaces"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppContextForCopiesRequestState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/certificates/CERT-1?page=2", nil)
	ctx.Params = gin.Params{{Key: "number", Value: "CERT-1"}}
	ctx.Set("AppContext", &interfaces.ApplicationContext[any]{
		Keys:      map[string]any{"UserID": "user-1"},
		UserAgent: "Mozilla/5.0",
		DeviceID:  "device-1",
		ClientIP:  "10.0.0.1",
	})

	body := &dto.PaginationDTO{Page: 2}
	appContext := appContextFor(ctx, body)

	assert.Same(t, body, appContext.Body)
	assert.Equal(t, "user-1", appContext.GetStringContextData("UserID"))
	assert.Equal(t, "CERT-1", appContext.GetStringParameter("number"))
	assert.Equal(t, "2", appContext.GetStringQuery("page"))
	assert.Equal(t, "device-1", appContext.DeviceID)
	assert.Equal(t, "10.0.0.1", appContext.ClientIP)
}

func TestBindJSONRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{not json"))
	ctx.Request.Header.Set("Content-Type", "application/json")

	body, ok := bindJSON[dto.LoginDTO](ctx)
	assert.False(t, ok)
	assert.Nil(t, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBindJSONDecodesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ada@example.com","password":"secret123"}`))
	ctx.Request.Header.Set("Content-Type", "application/json")

	body, ok := bindJSON[dto.LoginDTO](ctx)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", body.Email)
}

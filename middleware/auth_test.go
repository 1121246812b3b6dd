package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kadima-pos/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware("s3cret"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt(CtxUserID), "merchant_id": c.GetString(CtxMerchantID)})
	})
	r.GET("/admin", AuthMiddleware("s3cret"), AdminMiddleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/merchants/:merchant_id", AuthMiddleware("s3cret"), MerchantScope(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func request(t *testing.T, r http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()
	cashier, err := utils.GenerateToken("s3cret", time.Hour, 5, "k@t.id", "cashier", "m-1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, request(t, r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(t, r, "/me", "garbage").Code)

	w := request(t, r, "/me", cashier)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":5,"merchant_id":"m-1"}`, w.Body.String())
}

func TestAdminMiddleware(t *testing.T) {
	r := newAuthRouter()
	cashier, _ := utils.GenerateToken("s3cret", time.Hour, 5, "k@t.id", "cashier", "m-1")
	admin, _ := utils.GenerateToken("s3cret", time.Hour, 1, "a@t.id", "admin", "m-1")

	assert.Equal(t, http.StatusForbidden, request(t, r, "/admin", cashier).Code)
	assert.Equal(t, http.StatusNoContent, request(t, r, "/admin", admin).Code)
}

func TestMerchantScope(t *testing.T) {
	r := newAuthRouter()
	cashier, _ := utils.GenerateToken("s3cret", time.Hour, 5, "k@t.id", "cashier", "m-1")

	assert.Equal(t, http.StatusNoContent, request(t, r, "/merchants/m-1", cashier).Code)
	assert.Equal(t, http.StatusForbidden, request(t, r, "/merchants/m-2", cashier).Code)
}

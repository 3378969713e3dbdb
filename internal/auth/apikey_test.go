package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyMiddleware(key))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header map[string]string
		want   int
	}{
		{name: "disabled", key: "", want: http.StatusNoContent},
		{name: "missing", key: "s3cret", want: http.StatusUnauthorized},
		{name: "header ok", key: "s3cret", header: map[string]string{"X-API-Key": "s3cret"}, want: http.StatusNoContent},
		{name: "header wrong", key: "s3cret", header: map[string]string{"X-API-Key": "nope"}, want: http.StatusForbidden},
		{name: "bearer ok", key: "s3cret", header: map[string]string{"Authorization": "Bearer s3cret"}, want: http.StatusNoContent},
		{name: "bearer lowercase", key: "s3cret", header: map[string]string{"Authorization": "bearer s3cret"}, want: http.StatusNoContent},
		{name: "basic ignored", key: "s3cret", header: map[string]string{"Authorization": "Basic s3cret"}, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			newEngine(tt.key).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

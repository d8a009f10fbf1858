package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

func okRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func hit(r *gin.Engine, headers map[string]string) int {
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_BurstThenRejects(t *testing.T) {
	r := okRouter(RateLimit(rate.Limit(1), 2))

	assert.Equal(t, http.StatusOK, hit(r, nil))
	assert.Equal(t, http.StatusOK, hit(r, nil))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, nil))
}

func TestRateLimit_PerIP(t *testing.T) {
	r := okRouter(RateLimit(rate.Limit(1), 1))

	assert.Equal(t, http.StatusOK, hit(r, map[string]string{"X-Forwarded-For": "10.0.0.1"}))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, map[string]string{"X-Forwarded-For": "10.0.0.1"}))
	// 换一个来源 IP，独立配额
	assert.Equal(t, http.StatusOK, hit(r, map[string]string{"X-Forwarded-For": "10.0.0.2"}))
}

func TestAdminRequired(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("kunci-rahasia"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("no hash configured", func(t *testing.T) {
		t.Setenv("ADMIN_KEY_HASH", "")
		r := okRouter(AdminRequired())
		assert.Equal(t, http.StatusForbidden, hit(r, map[string]string{"X-Admin-Key": "kunci-rahasia"}))
	})

	t.Run("wrong key", func(t *testing.T) {
		t.Setenv("ADMIN_KEY_HASH", string(hash))
		r := okRouter(AdminRequired())
		assert.Equal(t, http.StatusForbidden, hit(r, map[string]string{"X-Admin-Key": "salah"}))
	})

	t.Run("missing key", func(t *testing.T) {
		t.Setenv("ADMIN_KEY_HASH", string(hash))
		r := okRouter(AdminRequired())
		assert.Equal(t, http.StatusForbidden, hit(r, nil))
	})

	t.Run("correct key", func(t *testing.T) {
		t.Setenv("ADMIN_KEY_HASH", string(hash))
		r := okRouter(AdminRequired())
		assert.Equal(t, http.StatusOK, hit(r, map[string]string{"X-Admin-Key": "kunci-rahasia"}))
	})
}

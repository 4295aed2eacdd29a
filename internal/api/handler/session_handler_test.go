package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestSessionLogout_WithoutRedisStillSucceeds(t *testing.T) {
	h := NewSessionHandler(nil)

	r := gin.New()
	r.POST("/auth/logout", func(c *gin.Context) {
		c.Set("token_jti", "jti-1")
		c.Set("token_expires_at", time.Now().Add(time.Hour))
	}, h.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	env := decodeEnvelope(t, w.Body)
	if env.Code != 0 {
		t.Errorf("code = %d, want 0", env.Code)
	}
}

func TestSessionLogout_MissingClaimsContext(t *testing.T) {
	h := NewSessionHandler(nil)

	r := gin.New()
	r.POST("/auth/logout", h.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/config"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestManager(t *testing.T) *jwt.Manager {
	t.Helper()
	return jwt.NewManager(&config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})
}

func TestJWTAuth_InjectsIdentityAndTokenClaims(t *testing.T) {
	mgr := newTestManager(t)
	token, err := mgr.GenerateToken("acct-1", "teacher")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var gotUserID, gotRole, gotJTI string
	var gotExp any
	r := gin.New()
	r.GET("/whoami", JWTAuth(mgr, nil), func(c *gin.Context) {
		gotUserID = c.GetString("user_id")
		gotRole = c.GetString("role")
		gotJTI = c.GetString("token_jti")
		gotExp, _ = c.Get("token_expires_at")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotUserID != "acct-1" || gotRole != "teacher" {
		t.Errorf("identity = (%q, %q), want (acct-1, teacher)", gotUserID, gotRole)
	}
	if gotJTI == "" {
		t.Error("token_jti not injected")
	}
	expiresAt, ok := gotExp.(time.Time)
	if !ok {
		t.Fatal("token_expires_at not injected")
	}
	if until := time.Until(expiresAt); until <= 0 || until > time.Hour {
		t.Errorf("expiry %v outside the issued lifetime", until)
	}
}

func TestJWTAuth_RejectsMalformedHeader(t *testing.T) {
	mgr := newTestManager(t)

	r := gin.New()
	r.GET("/", JWTAuth(mgr, nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, header := range []string{"", "Token abc", "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// MustGetUserID extracts user_id injected by the auth middleware. On a
// missing value it writes 401 and returns false; callers should return.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, CodeUnauthorized, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, CodeUnauthorized, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the caller's role injected by the auth middleware.
func MustGetRole(c *gin.Context) (scope.Role, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, CodeUnauthorized, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || !scope.Role(s).Valid() {
		response.Unauthorized(c, CodeUnauthorized, "not authenticated")
		return "", false
	}
	return scope.Role(s), true
}

// callerIdentity extracts both auth values in one call.
func callerIdentity(c *gin.Context) (string, scope.Role, bool) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return "", "", false
	}
	role, ok := MustGetRole(c)
	if !ok {
		return "", "", false
	}
	return userID, role, true
}

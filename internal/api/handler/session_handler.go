package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/redis"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// SessionHandler terminates sessions. Tokens are issued by the identity
// provider; this service only invalidates the one presented.
type SessionHandler struct {
	rdb *redis.Client
}

// NewSessionHandler creates a SessionHandler instance.
func NewSessionHandler(rdb *redis.Client) *SessionHandler {
	return &SessionHandler{rdb: rdb}
}

// Logout blacklists the presented token's JTI for the remainder of its
// lifetime. Without Redis the client-side discard is all there is.
func (h *SessionHandler) Logout(c *gin.Context) {
	if h.rdb != nil {
		jti := c.GetString("token_jti")
		exp, ok := c.Get("token_expires_at")
		if jti != "" && ok {
			if expiresAt, isTime := exp.(time.Time); isTime {
				if err := h.rdb.BlacklistToken(c.Request.Context(), jti, time.Until(expiresAt)); err != nil {
					response.InternalError(c)
					return
				}
			}
		}
	}
	response.OK(c, nil)
}

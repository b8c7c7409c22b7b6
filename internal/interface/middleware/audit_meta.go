package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-user-directory/pkg/audit"
)

// AuditMeta copies request_id and real_ip onto the request context so services
// can stamp audit events without depending on gin. Must run after RequestIDMiddleware and RealIP.
func AuditMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		meta := audit.Meta{
			RequestID: c.GetString(RequestIDKey),
			IP:        c.GetString(RealIPKey),
		}
		c.Request = c.Request.WithContext(audit.WithMeta(c.Request.Context(), meta))
		c.Next()
	}
}

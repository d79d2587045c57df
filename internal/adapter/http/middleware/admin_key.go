package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"marketplace_payments/pkg"

	"github.com/gin-gonic/gin"
)

const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey guards operator endpoints. An empty key disables them.
func RequireAdminKey(key string) gin.HandlerFunc {
	key = strings.TrimSpace(key)
	return func(c *gin.Context) {
		if key == "" {
			appErr := pkg.NewDomainErrorSimple("ADMIN_DISABLED", "Admin API disabled", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		got := c.GetHeader(AdminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			log.Printf("[http][middleware] admin key rejected path=%s ip=%s", c.FullPath(), c.ClientIP())
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

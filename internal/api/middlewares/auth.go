// internal/api/middlewares/auth.go
// Session 認證中介軟體

package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-mailer/internal/config"
	"job-mailer/internal/session"
)

// session cookie 名稱
const CookieName = "jm_sid"

// SessionAuth session 認證中介軟體
// 未設定 UI_AUTH_USER / UI_AUTH_PASS 時認證停用，全部放行
func SessionAuth(cfg *config.Config, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.AuthEnabled() {
			c.Next()
			return
		}

		token, err := c.Cookie(CookieName)
		if err != nil || !sessions.Validate(token) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "Unauthorized. Please login.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

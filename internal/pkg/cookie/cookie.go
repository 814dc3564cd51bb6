package cookie

import (
	"net/http"
	"strings"
	"time"

	"bookmyvenue/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// SetAccessToken stores the token in an HttpOnly cookie that lives as long as the token.
func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	write(c, cfg, accessToken, int(expiry.Seconds()))
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	sameSite := parseSameSite(cfg.SameSite)
	// browsers drop SameSite=None cookies that are not Secure
	secure := cfg.Secure || sameSite == http.SameSiteNoneMode

	c.SetSameSite(sameSite)
	c.SetCookie(AccessTokenCookieName, value, maxAge, "/", cfg.Domain, secure, true)
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

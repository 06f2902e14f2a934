package cookie

import (
	"net/http"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	CartSessionCookieName = "cart_session"
	CartSessionHeader     = "X-Cart-Session"
)

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// GetCartSession prefers the explicit header over the cookie.
func GetCartSession(c *gin.Context) string {
	if v := c.GetHeader(CartSessionHeader); v != "" {
		return v
	}
	v, _ := c.Cookie(CartSessionCookieName)
	return v
}

func SetCartSession(c *gin.Context, cfg config.CookieConfig, sessionID string, ttl time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		CartSessionCookieName,
		sessionID,
		int(ttl.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearCartSession(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(CartSessionCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

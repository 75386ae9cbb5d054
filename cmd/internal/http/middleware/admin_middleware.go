package middleware

import (
	"boycottwatch/cmd/internal/utils/apierror"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const AdminCookieName = "admin_token"

type AdminMiddlewareConfig struct {
	// Token is the single shared moderation secret. There is no per-user
	// identity behind it; a request either carries it or it does not.
	Token string
}

// NewAdminMiddleware guards moderation routes with the static admin token,
// accepted either as a bearer header or as the admin_token cookie.
func NewAdminMiddleware(cfg *AdminMiddlewareConfig) echo.MiddlewareFunc {
	if cfg.Token == "" {
		log.Fatalf("admin middleware configured without a token")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			presented := extractCredential(c)
			if presented == "" {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(cfg.Token)) != 1 {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}
			return next(c)
		}
	}
}

func extractCredential(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	cookie, err := c.Cookie(AdminCookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

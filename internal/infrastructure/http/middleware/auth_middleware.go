package middleware

import (
	stdErrors "errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/incial/Incial/errors"
	"github.com/incial/Incial/pkg/session"
)

// EchoAuth returns an Echo middleware that validates the bearer session
// token and sets "user" (*session.User) and "user_id" into Echo context.
// The user's name is what the mutation coordinator stamps into audit
// fields.
func EchoAuth(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return reject(c, errors.ErrUnauthenticated())
			}

			user, err := sessions.Validate(token)
			if err != nil {
				if stdErrors.Is(err, jwt.ErrTokenExpired) {
					return reject(c, errors.ErrTokenExpired())
				}
				return reject(c, errors.ErrInvalidToken())
			}

			c.Set("user", user)
			c.Set("user_id", user.ID)

			return next(c)
		}
	}
}

// reject ends the request with the same error envelope the handlers write.
func reject(c echo.Context, appErr errors.AppError) error {
	return c.JSON(appErr.HTTPCode, echo.Map{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// extractToken reads the bearer token from the Authorization header, with
// the access_token cookie as fallback.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}

	return ""
}

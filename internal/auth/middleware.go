package auth

import (
	"context"
	"regexp"
	"strings"

	"github.com/eleven-am/metric-frames/internal/shared"
	"github.com/labstack/echo/v4"
)

type contextKey string

const tokenKey contextKey = "bearer_token"

const MissingTokenMessage = "Authorization header with Bearer token is required"

var bearerPattern = regexp.MustCompile(`(?i)^Bearer\s+(.+)$`)

// ParseBearer extracts the token from an Authorization header value. The
// token is never validated here; the upstream decides whether it is good.
func ParseBearer(header string) (string, bool) {
	m := bearerPattern.FindStringSubmatch(header)
	if m == nil {
		return "", false
	}
	token := strings.TrimSpace(m[1])
	return token, token != ""
}

// RequireBearer rejects requests without a bearer token and stores the token
// on the request context for the handler.
func RequireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := ParseBearer(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return shared.Unauthorized(MissingTokenMessage)
		}

		ctx := context.WithValue(c.Request().Context(), tokenKey, token)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func GetToken(c echo.Context) string {
	token, _ := c.Request().Context().Value(tokenKey).(string)
	return token
}

func RequireToken(c echo.Context) (string, error) {
	token := GetToken(c)
	if token == "" {
		return "", shared.Unauthorized(MissingTokenMessage)
	}
	return token, nil
}

func SetTokenForTest(c echo.Context, token string) {
	ctx := context.WithValue(c.Request().Context(), tokenKey, token)
	c.SetRequest(c.Request().WithContext(ctx))
}

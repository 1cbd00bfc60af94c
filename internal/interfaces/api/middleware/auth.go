package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo context key holding the authenticated user id.
const UserIDKey = "userId"

// TokenParser verifies a bearer token and returns its subject.
type TokenParser interface {
	Parse(token string) (string, error)
}

// Auth rejects requests without a valid bearer token and stores the user id on the context.
func Auth(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := c.Request().Header.Get(echo.HeaderAuthorization)
			if tokenString == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header required"})
			}

			if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "Bearer ") {
				tokenString = tokenString[7:]
			}

			userID, err := tokens.Parse(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id, or "" outside Auth.
func UserID(c echo.Context) string {
	id, _ := c.Get(UserIDKey).(string)
	return id
}

package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crmtrack/internal/auth"
	apperrors "github.com/umalmyha/crmtrack/internal/errors"
)

const identityContextKey = "identity"

// Authorize verifies bearer token and stashes the acting user id into
// request context. Every data-access call downstream takes this identity
// as an explicit argument, so missing identity always fails at the boundary.
func Authorize(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get("Authorization")
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 {
				return apperrors.NewUnauthenticatedErr("invalid Authorization header format")
			}

			claims, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return apperrors.NewUnauthenticatedErr(err.Error())
			}

			if claims.Subject == "" {
				return apperrors.NewUnauthenticatedErr("token carries no subject")
			}

			c.Set(identityContextKey, claims.Subject)
			return next(c)
		}
	}
}

// Identity extracts the acting user id placed by Authorize
func Identity(c echo.Context) (string, error) {
	id, _ := c.Get(identityContextKey).(string)
	if id == "" {
		return "", apperrors.NewUnauthenticatedErr("no authenticated user bound to request")
	}
	return id, nil
}

package api

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/entity"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/session"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// SessionMiddleware parses and verifies the session cookie, leaving the
// token under the "user" context key.
func SessionMiddleware(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.SessionClaims)
		},
		SigningKey:  secret,
		TokenLookup: "cookie:" + SessionCookieName,
	})
}

// SessionCheck rejects tokens that verify but are no longer the live
// session for the user, i.e. after logout.
func SessionCheck(sessions session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return c.JSON(401, map[string]string{"error": "unauthorized"})
			}
			claims, ok := token.Claims.(*service.SessionClaims)
			if !ok {
				return c.JSON(401, map[string]string{"error": "unauthorized"})
			}

			stored, err := sessions.Get(c.Request().Context(), claims.Email)
			if err != nil || stored != token.Raw {
				return c.JSON(401, map[string]string{"error": "unauthorized"})
			}

			return next(c)
		}
	}
}

// RequireAdmin gates the administrative routes on the role claim.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := sessionClaims(c)
		if claims == nil || claims.Role != entity.RoleAdmin {
			return c.JSON(403, map[string]string{"error": "access denied"})
		}
		return next(c)
	}
}

func sessionClaims(c echo.Context) *service.SessionClaims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*service.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

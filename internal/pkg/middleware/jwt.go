package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// JWT returns the JWT middleware for protected routes. On success the
// token's user_id and role claims are copied into the echo context so
// handlers never parse the token themselves.
func JWT(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}
			if userID, exists := claims["user_id"]; exists {
				c.Set("user_id", userID)
			}
			if role, exists := claims["role"]; exists {
				c.Set("role", role)
			}
		},
	})
}

// ActorID extracts the authenticated caller's user id from the context
func ActorID(c echo.Context) (uuid.UUID, bool) {
	raw, ok := c.Get("user_id").(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// ActorRole extracts the authenticated caller's role claim from the context.
// The role claim is a hint for routing only; authorization decisions re-check
// the stored role.
func ActorRole(c echo.Context) string {
	role, _ := c.Get("role").(string)
	return role
}

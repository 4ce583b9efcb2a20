package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/sahakarita/sahakarita/internal/pkg/jwt"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

// JWTAuth validates bearer tokens and exposes user_id and role on the echo context
func JWTAuth(cfg *models.Config) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtpkg.ValidateToken(auth, cfg.JWT.Secret)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get("user").(*jwt.MapClaims)
			if !ok {
				return
			}
			c.Set("user_id", (*claims)["user_id"])
			c.Set("role", (*claims)["role"])
		},
	})
}

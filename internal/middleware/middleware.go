package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// AuthMiddleware validates the bearer token and stores user_id (and email,
// when the claim is present) in the gin context. The signing secret comes
// from the same viper environment the rest of the configuration uses.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required", "Missing authorization token")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			unauthorized(c, "Invalid authorization header format", "Use format: Bearer {token}")
			return
		}

		secret := []byte(viper.GetString("JWT_SECRET_KEY"))
		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil {
			unauthorized(c, "Invalid or expired token", err.Error())
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			unauthorized(c, "Invalid token claims", "Token validation failed")
			return
		}

		// A signed token is not trusted to carry well-formed claims; a
		// missing or mistyped user_id rejects instead of panicking.
		rawUserID, ok := claims["user_id"].(float64)
		if !ok || rawUserID <= 0 {
			unauthorized(c, "Invalid token claims", "Token has no usable user_id claim")
			return
		}
		c.Set("user_id", uint(rawUserID))
		if email, ok := claims["email"].(string); ok {
			c.Set("email", email)
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context, message, detail string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
		"error":   detail,
	})
	c.Abort()
}

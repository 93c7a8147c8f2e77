package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	UserIDKey = "user_id"
	RoleKey   = "role"
)

func parseToken(c *gin.Context) (jwt.MapClaims, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) bool {
	id, ok := claims["user_id"].(float64)
	if !ok {
		return false
	}
	c.Set(UserIDKey, int(id))

	if role, ok := claims["role"].(string); ok {
		c.Set(RoleKey, role)
	}
	return true
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// caller's id and role on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c)
		if !ok || !setIdentity(c, claims) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth stores the identity when a valid token is present but lets
// anonymous requests through. Used by read endpoints that personalize their
// response for logged-in callers.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseToken(c); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gashadrift/models"
	"gashadrift/utils"
)

// bearerToken pulls the token out of the Authorization header, or "" when
// the header is missing or malformed.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// JWTAuthUserMiddleware admits any signed-in session (user or admin) and
// stores its identity on the context.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		subject, role, err := utils.ExtractSessionFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("sessionName", subject)
		c.Set("sessionRole", role)
		c.Next()
	}
}

// JWTAuthAdminMiddleware admits only sessions carrying the admin role.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		subject, role, err := utils.ExtractSessionFromToken(tokenString)
		if err != nil || role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("sessionName", subject)
		c.Set("sessionRole", role)
		c.Set("isAdmin", true)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"clinicbook/models"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
)

// bearerToken extracts the token from the Authorization header, or "".
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// RequireAuth rejects requests without a valid token and stores the caller's
// identity in the context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		userID, role, err := utils.ExtractClaimsFromToken(token)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

// OptionalAuth stores the caller's identity when a valid token is present but
// lets anonymous requests through. Guest bookings depend on this: the booking
// engine decides whether an anonymous request is acceptable.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if userID, role, err := utils.ExtractClaimsFromToken(token); err == nil && userID != "" {
				c.Set("userID", userID)
				c.Set("userRole", role)
			}
		}
		c.Next()
	}
}

// RequireStaff rejects callers that are not authenticated staff members.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		userID, role, err := utils.ExtractClaimsFromToken(token)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if role != models.RoleStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}
		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

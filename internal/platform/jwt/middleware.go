package jwtmw

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ContextUserID = "userID"

// errorBody mirrors the API-wide error contract: a list of messages under a
// stable "errors" key. Declared here so the platform package stays independent
// of the feature DTOs.
func errorBody(msg string) gin.H {
	return gin.H{"errors": []gin.H{{"msg": msg}}}
}

// AuthRequired returns a Gin middleware function that validates bearer tokens
// with the injected verifier and restricts access to authenticated users only.
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("No token, authorization denied"))
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and expiry
		userID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			// Expired and invalid are logged separately but answered identically
			if errors.Is(err, ErrTokenExpired) {
				slog.Warn("expired token rejected", "remote_addr", c.ClientIP())
			} else {
				slog.Warn("invalid token rejected", "remote_addr", c.ClientIP())
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("Token is not valid"))
			return
		}

		// 3. Expose the authenticated user ID to downstream handlers
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

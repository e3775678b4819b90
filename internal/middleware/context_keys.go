package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated member's user ID. A custom key type
// prevents collisions with other context values.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID set by
// AuthMiddleware. Handlers use it as the requesting user for the
// condominium-membership checks in the service layer.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}

	// AuthMiddleware stores the ID on the request context, not the gin map.
	if v := c.Request.Context().Value(userIDKey); v != nil {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}

	return "", false
}

package middleware

import "github.com/gin-gonic/gin"

const (
	// UserContextKey is where handlers find the authenticated user id,
	// via c.Get(middleware.UserContextKey).
	UserContextKey = "user_id"

	// DefaultUserID is the stub identity. There is no session handling in
	// this demo, so every request acts as this user.
	DefaultUserID = 1
)

// Identity attaches the stub user id to the request context.
// TODO: resolve the id from a real session once authentication exists.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(UserContextKey, DefaultUserID)
		c.Next()
	}
}

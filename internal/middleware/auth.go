package middleware

import (
	"net/http"

	"inkwell/internal/models"
	"inkwell/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CtxUserKey = "user"

// SessionUserKey is the session field holding the logged-in user id.
const SessionUserKey = "user_id"

// LoadUser resolves the session's user on every request and sets it on
// the gin context for handlers and templates.
func LoadUser(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(SessionUserKey)

		if id, ok := userID.(uint); ok {
			user, err := store.GetUserByID(c.Request.Context(), id)
			if err == nil {
				c.Set(CtxUserKey, user)
			}
		}
		c.Next()
	}
}

// AuthRequired redirects anonymous visitors to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CtxUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired terminates the request with 403 unless the current user
// holds the admin role. Anonymous visitors get the same 403.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, exists := c.Get(CtxUserKey)
		if !exists {
			c.HTML(http.StatusForbidden, "error.html", gin.H{"Error": "You are not allowed to do that."})
			c.Abort()
			return
		}
		user := u.(*models.User)
		if !user.IsAdmin() {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"Error":       "You are not allowed to do that.",
				"CurrentUser": user,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the request's user, or nil for anonymous.
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(CtxUserKey); exists {
		return u.(*models.User)
	}
	return nil
}

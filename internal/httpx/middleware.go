package httpx

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionKey is the session field holding the logged-in admin's username.
// Presence of a non-empty value is what makes a session authenticated.
const SessionKey = "admin_username"

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: phone is required
	Error string `json:"error"`
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// RequireAdmin gates admin pages and admin APIs behind a live session.
// Unauthenticated requests are redirected to the login form with the
// original path preserved for the post-login redirect.
func RequireAdmin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if u, ok := sess.Get(SessionKey).(string); !ok || u == "" {
			next := url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, loginPath+"?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

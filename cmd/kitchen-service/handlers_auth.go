package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/ramasethuai/annapurnaskitchen/internal/admin"
	"github.com/ramasethuai/annapurnaskitchen/internal/httpx"
)

// invalidCredentials is shown for unknown usernames and wrong passwords
// alike, so the login form cannot be used to probe for usernames.
const invalidCredentials = "Invalid username or password."

// indexHandler serves the public ordering page.
func indexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	}
}

// healthHandler godoc
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func loginFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"Error": "",
			"Next":  c.Query("next"),
		})
	}
}

func loginHandler(repo admin.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.PostForm("username"))
		password := c.PostForm("password")

		a, err := repo.GetByUsername(c.Request.Context(), username)
		if err != nil && !errors.Is(err, admin.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}
		if err != nil || !admin.CheckPassword(a.PasswordHash, password) {
			c.HTML(http.StatusOK, "admin_login.html", gin.H{
				"Error": invalidCredentials,
				"Next":  c.Query("next"),
			})
			return
		}

		sess := sessions.Default(c)
		sess.Set(httpx.SessionKey, a.Username)
		if err := sess.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session save failed"})
			return
		}
		c.Redirect(http.StatusFound, safeNext(c.Query("next"), "/admin"))
	}
}

func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Clear()
		_ = sess.Save()
		c.Redirect(http.StatusFound, "/admin/login")
	}
}

// adminPageHandler serves the dashboard shell; the page itself loads its
// data from the /api/admin endpoints.
func adminPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin.html", gin.H{
			"Username": sessions.Default(c).Get(httpx.SessionKey),
		})
	}
}

// safeNext keeps post-login redirects on this site: only a local absolute
// path is honored, anything else falls back.
func safeNext(next, fallback string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return fallback
}

package main

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/ramasethuai/annapurnaskitchen/internal/admin"
)

// listAdminsHandler godoc
// @Summary List admin accounts
// @Description Usernames only; password hashes are never returned.
// @Tags admin
// @Produce json
// @Success 200 {array} admin.Entry
// @Failure 500 {object} httpx.HTTPError
// @Router /api/admin/admins [get]
func listAdminsHandler(repo admin.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
			return
		}
		out := make([]admin.Entry, 0, len(list))
		for _, a := range list {
			out = append(out, admin.Entry{ID: a.ID, Username: a.Username})
		}
		c.JSON(http.StatusOK, out)
	}
}

// createAdminHandler godoc
// @Summary Create an admin account
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body admin.CreateRequest true "credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httpx.HTTPError
// @Failure 409 {object} httpx.HTTPError
// @Router /api/admin/admins [post]
func createAdminHandler(repo admin.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req admin.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required."})
			return
		}
		// The minimum counts characters, not bytes.
		if utf8.RuneCountInString(req.Password) < admin.MinPasswordLen {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password should be at least 6 characters."})
			return
		}

		hash, err := admin.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "hash failed"})
			return
		}
		if err := repo.Create(c.Request.Context(), req.Username, hash); err != nil {
			if errors.Is(err, admin.ErrAlreadyExist) {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already exists."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

package main

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ramasethuai/annapurnaskitchen/internal/menu"
)

// getMenuConfigHandler godoc
// @Summary Read the menu configuration
// @Description Returns all-empty fields when no configuration was saved yet.
// @Tags menu
// @Produce json
// @Success 200 {object} menu.Config
// @Failure 500 {object} httpx.HTTPError
// @Router /api/menu_config [get]
func getMenuConfigHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := repo.Get(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu config read failed"})
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// saveMenuConfigHandler godoc
// @Summary Save the menu configuration
// @Description The menu blob must parse as JSON; a rejected save leaves the stored configuration untouched.
// @Tags menu
// @Accept json
// @Produce json
// @Param payload body menu.Config true "configuration"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httpx.HTTPError
// @Router /api/admin/menu_config [post]
func saveMenuConfigHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menu.Config
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if !json.Valid([]byte(req.MenuJSON)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu JSON is not valid JSON."})
			return
		}
		if err := repo.Save(c.Request.Context(), &req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu config save failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

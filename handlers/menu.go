package handlers

import (
	"net/http"
	"strconv"

	"github.com/Bapiggott/BigBoy-sub001/config"
	"github.com/Bapiggott/BigBoy-sub001/models"
	"github.com/Bapiggott/BigBoy-sub001/services"

	"github.com/gin-gonic/gin"
)

// GetMenu returns menu items, optionally filtered by category or
// availability (public)
func GetMenu(c *gin.Context) {
	q := services.MenuItemQuery{
		AvailableOnly: c.Query("available") == "true",
	}
	if categoryID := c.Query("categoryId"); categoryID != "" {
		if id, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
			cid := uint(id)
			q.CategoryID = &cid
		}
	}

	items, err := services.FindMenuItems(config.DB, q)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// ListCategories returns active menu categories with their items
func ListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Preload("MenuItems").
		Where("is_active = ?", true).
		Order("sort_order asc").
		Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// GetMenuItem returns a single menu item with its modifier groups
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	err := config.DB.Preload("Category").Preload("ModifierGroups.Modifiers").
		First(&item, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": services.CodeNotFound, "error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

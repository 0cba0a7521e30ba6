package handlers

import (
	"net/http"

	"github.com/Bapiggott/BigBoy-sub001/config"
	"github.com/Bapiggott/BigBoy-sub001/middleware"
	"github.com/Bapiggott/BigBoy-sub001/models"

	"github.com/gin-gonic/gin"
)

// ── Favorites ──────────────────────────────────────────────────────

// ListFavorites returns the caller's bookmarked menu items
func ListFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var favorites []models.FavoriteItem
	config.DB.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites)
	c.JSON(http.StatusOK, gin.H{"count": len(favorites), "favorites": favorites})
}

// AddFavorite bookmarks a menu item
func AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menuItem models.MenuItem
	if err := config.DB.First(&menuItem, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	favorite := models.FavoriteItem{UserID: userID, MenuItemID: req.MenuItemID}
	if err := config.DB.Where(&favorite).FirstOrCreate(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Favorite added", "favorite": favorite})
}

// RemoveFavorite deletes a bookmark by menu item id
func RemoveFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	result := config.DB.Where("user_id = ? AND menu_item_id = ?", userID, c.Param("itemId")).
		Delete(&models.FavoriteItem{})
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}

// ── Addresses ──────────────────────────────────────────────────────

type AddressRequest struct {
	Label     string `json:"label"`
	Line1     string `json:"line1" binding:"required"`
	Line2     string `json:"line2"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	IsDefault bool   `json:"isDefault"`
}

// ListAddresses returns the caller's address book
func ListAddresses(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var addresses []models.Address
	config.DB.Where("user_id = ?", userID).Order("is_default desc, created_at desc").Find(&addresses)
	c.JSON(http.StatusOK, gin.H{"count": len(addresses), "addresses": addresses})
}

// AddAddress saves a new delivery address
func AddAddress(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address := models.Address{
		UserID:    userID,
		Label:     req.Label,
		Line1:     req.Line1,
		Line2:     req.Line2,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		IsDefault: req.IsDefault,
	}
	if req.IsDefault {
		config.DB.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false)
	}
	if err := config.DB.Create(&address).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Address added", "address": address})
}

// UpdateAddress edits one of the caller's addresses
func UpdateAddress(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var address models.Address
	if err := config.DB.Where("user_id = ?", userID).First(&address, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.IsDefault && !address.IsDefault {
		config.DB.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false)
	}

	address.Label = req.Label
	address.Line1 = req.Line1
	address.Line2 = req.Line2
	address.City = req.City
	address.State = req.State
	address.ZipCode = req.ZipCode
	address.IsDefault = req.IsDefault
	config.DB.Save(&address)

	c.JSON(http.StatusOK, gin.H{"message": "Address updated", "address": address})
}

// RemoveAddress deletes one of the caller's addresses
func RemoveAddress(c *gin.Context) {
	userID := middleware.GetUserID(c)
	result := config.DB.Where("user_id = ? AND id = ?", userID, c.Param("id")).Delete(&models.Address{})
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address removed"})
}

// ── Preferences ────────────────────────────────────────────────────

// GetPreferences returns the caller's preference record, creating the
// default one on first read
func GetPreferences(c *gin.Context) {
	userID := middleware.GetUserID(c)
	prefs := models.Preferences{UserID: userID, EmailOffers: true}
	config.DB.Where(models.Preferences{UserID: userID}).FirstOrCreate(&prefs)
	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// UpdatePreferences overwrites the caller's preference record
func UpdatePreferences(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		EmailOffers  bool   `json:"emailOffers"`
		SmsUpdates   bool   `json:"smsUpdates"`
		DietaryNotes string `json:"dietaryNotes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs := models.Preferences{UserID: userID}
	config.DB.Where(models.Preferences{UserID: userID}).FirstOrCreate(&prefs)
	prefs.EmailOffers = req.EmailOffers
	prefs.SmsUpdates = req.SmsUpdates
	prefs.DietaryNotes = req.DietaryNotes
	config.DB.Save(&prefs)

	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated", "preferences": prefs})
}

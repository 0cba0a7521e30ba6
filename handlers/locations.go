package handlers

import (
	"net/http"

	"github.com/Bapiggott/BigBoy-sub001/config"
	"github.com/Bapiggott/BigBoy-sub001/models"
	"github.com/Bapiggott/BigBoy-sub001/services"

	"github.com/gin-gonic/gin"
)

// ListLocations returns store locations, filtered by search text,
// city, amenity, or active flag (public)
func ListLocations(c *gin.Context) {
	locations, err := services.FindLocations(config.DB, services.LocationQuery{
		Search:     c.Query("search"),
		City:       c.Query("city"),
		ActiveOnly: c.Query("active") == "true",
		Amenity:    c.Query("amenity"),
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(locations), "locations": locations})
}

// GetLocation returns a single location with its weekly hours
func GetLocation(c *gin.Context) {
	var location models.Location
	if err := config.DB.Preload("Hours").First(&location, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": services.CodeNotFound, "error": "Location not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": location})
}

package handlers

import (
	"net/http"

	"github.com/Bapiggott/BigBoy-sub001/services"

	"github.com/gin-gonic/gin"
)

// renderServiceError maps a workflow error to its HTTP status, keeping
// the machine-readable code alongside the message.
func renderServiceError(c *gin.Context, err error) {
	if e, ok := services.AsError(err); ok {
		c.JSON(services.HTTPStatus(err), gin.H{"code": e.Code, "error": e.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

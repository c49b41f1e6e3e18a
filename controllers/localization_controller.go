package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLocalizations serves the compiled {key: value} bundle for one locale.
// The project id is part of the bundle address and is echoed back as is.
func GetLocalizations(c *gin.Context) {
	projectID := c.Param("project_id")
	locale := c.Param("locale")

	localizations, err := translationKeyService.GetLocalizations(locale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project_id":    projectID,
		"locale":        locale,
		"localizations": localizations,
	})
}

package controllers

import (
	"LocalizationAPI/models"
	"LocalizationAPI/repositories"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var translationKeyService TranslationKeyServiceInterface

func SetTranslationKeyService(service TranslationKeyServiceInterface) {
	translationKeyService = service
}

func GetTranslationKey(c *gin.Context) {
	id := c.Param("id")

	key, err := translationKeyService.GetTranslationKey(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Translation key not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, key)
}

func ListTranslationKeys(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 0 and 100"})
		return
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
		return
	}

	keys, err := translationKeyService.ListTranslationKeys(category, search, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, keys)
}

func CreateTranslationKey(c *gin.Context) {
	var input models.TranslationKeyCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	key, err := translationKeyService.CreateTranslationKey(input)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Translation key '%s' already exists", input.Key)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, key)
}

func UpdateTranslationKey(c *gin.Context) {
	id := c.Param("id")

	var update models.TranslationKeyUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	key, err := translationKeyService.UpdateTranslationKey(id, update)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Translation key not found"})
		case errors.Is(err, repositories.ErrAlreadyExists):
			newKey := ""
			if update.Key != nil {
				newKey = *update.Key
			}
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Translation key '%s' already exists", newKey)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, key)
}

func DeleteTranslationKey(c *gin.Context) {
	id := c.Param("id")

	if err := translationKeyService.DeleteTranslationKey(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Translation key not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func BulkUpdateTranslations(c *gin.Context) {
	var update models.BulkTranslationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	ok, err := translationKeyService.BulkUpdateTranslations(update.Translations, update.UpdatedBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update translations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Translations updated successfully"})
}

func GetTranslationCompletionStats(c *gin.Context) {
	stats, err := translationKeyService.GetCompletionStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

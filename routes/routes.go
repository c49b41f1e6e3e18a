package routes

import (
	"LocalizationAPI/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Compiled locale bundles
	r.GET("/localizations/:project_id/:locale", controllers.GetLocalizations)

	// Translation key management
	keys := r.Group("/translation-keys")
	{
		keys.GET("", controllers.ListTranslationKeys)
		keys.POST("", controllers.CreateTranslationKey)
		keys.GET("/stats/completion", controllers.GetTranslationCompletionStats)
		keys.POST("/bulk-update", controllers.BulkUpdateTranslations)
		keys.GET("/:id", controllers.GetTranslationKey)
		keys.PATCH("/:id", controllers.UpdateTranslationKey)
		keys.DELETE("/:id", controllers.DeleteTranslationKey)
	}
}

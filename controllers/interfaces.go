package controllers

import (
	"LocalizationAPI/models"
)

// TranslationKeyServiceInterface defines the operations the handlers need from
// the translation key service.
type TranslationKeyServiceInterface interface {
	GetTranslationKey(id string) (models.TranslationKey, error)
	ListTranslationKeys(category, search string, limit, offset int) ([]models.TranslationKey, error)
	CreateTranslationKey(input models.TranslationKeyCreate) (models.TranslationKey, error)
	UpdateTranslationKey(id string, update models.TranslationKeyUpdate) (models.TranslationKey, error)
	DeleteTranslationKey(id string) error
	BulkUpdateTranslations(updates map[string]map[string]string, updatedBy string) (bool, error)
	GetCompletionStats() (map[string]float64, error)
	GetLocalizations(locale string) (map[string]string, error)
}

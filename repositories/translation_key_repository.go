package repositories

import "LocalizationAPI/models"

type TranslationKeyRepository interface {
	FindByID(id string) (models.TranslationKey, error)
	FindAll(category, search string, limit, offset int) ([]models.TranslationKey, error)
	Create(key models.TranslationKey) (models.TranslationKey, error)
	UpdateFields(id string, fields map[string]interface{}) (models.TranslationKey, error)
	Delete(id string) error
	AllTranslations() ([]map[string]interface{}, error)
}

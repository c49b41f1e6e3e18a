package impl

import (
	"LocalizationAPI/isotime"
	"LocalizationAPI/models"
	"LocalizationAPI/repositories"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type TranslationKeyRepositoryImpl struct {
	DB *gorm.DB
}

func NewTranslationKeyRepository(db *gorm.DB) repositories.TranslationKeyRepository {
	return &TranslationKeyRepositoryImpl{DB: db}
}

func (r *TranslationKeyRepositoryImpl) FindByID(id string) (models.TranslationKey, error) {
	var key models.TranslationKey
	if err := r.DB.Where("id = ?", id).First(&key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TranslationKey{}, repositories.ErrNotFound
		}
		return models.TranslationKey{}, &repositories.DatabaseError{Err: err}
	}
	return key, nil
}

func (r *TranslationKeyRepositoryImpl) FindAll(category, search string, limit, offset int) ([]models.TranslationKey, error) {
	query := r.DB.Model(&models.TranslationKey{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		// Case-insensitive substring match, spelled so it works on both drivers
		query = query.Where(`LOWER("key") LIKE ?`, "%"+strings.ToLower(search)+"%")
	}

	var keys []models.TranslationKey
	if err := query.Limit(limit).Offset(offset).Find(&keys).Error; err != nil {
		return nil, &repositories.DatabaseError{Err: err}
	}
	if keys == nil {
		keys = []models.TranslationKey{}
	}
	return keys, nil
}

func (r *TranslationKeyRepositoryImpl) Create(key models.TranslationKey) (models.TranslationKey, error) {
	if key.Translations == nil {
		key.Translations = models.TranslationMap{}
	}
	if err := r.DB.Create(&key).Error; err != nil {
		if isDuplicateKey(err) {
			return models.TranslationKey{}, repositories.ErrAlreadyExists
		}
		return models.TranslationKey{}, &repositories.DatabaseError{Err: err}
	}
	return key, nil
}

func (r *TranslationKeyRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) (models.TranslationKey, error) {
	if len(fields) > 0 {
		result := r.DB.Model(&models.TranslationKey{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			if isDuplicateKey(result.Error) {
				return models.TranslationKey{}, repositories.ErrAlreadyExists
			}
			return models.TranslationKey{}, &repositories.DatabaseError{Err: result.Error}
		}
		if result.RowsAffected == 0 {
			return models.TranslationKey{}, repositories.ErrNotFound
		}
	}
	return r.FindByID(id)
}

func (r *TranslationKeyRepositoryImpl) Delete(id string) error {
	result := r.DB.Where("id = ?", id).Delete(&models.TranslationKey{})
	if result.Error != nil {
		return &repositories.DatabaseError{Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// AllTranslations returns the translations column of every key as raw
// documents with embedded timestamps decoded, without loading full rows.
func (r *TranslationKeyRepositoryImpl) AllTranslations() ([]map[string]interface{}, error) {
	var rows []sql.NullString
	if err := r.DB.Model(&models.TranslationKey{}).Pluck("translations", &rows).Error; err != nil {
		return nil, &repositories.DatabaseError{Err: err}
	}

	docs := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		doc := map[string]interface{}{}
		// Rows written outside the application may hold NULL instead of an
		// empty object
		if row.Valid && row.String != "" {
			if err := json.Unmarshal([]byte(row.String), &doc); err != nil {
				return nil, &repositories.DatabaseError{Err: err}
			}
		}
		docs = append(docs, isotime.Decode(doc).(map[string]interface{}))
	}
	return docs, nil
}

// isDuplicateKey reports whether err is a unique constraint violation. The
// drivers phrase it differently, so fall back to matching the message when the
// translated error is not available.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

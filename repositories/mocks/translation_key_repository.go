package mocks

import (
	"LocalizationAPI/models"

	"github.com/stretchr/testify/mock"
)

// TranslationKeyRepository is a testify mock of the repository interface.
type TranslationKeyRepository struct {
	mock.Mock
}

func (m *TranslationKeyRepository) FindByID(id string) (models.TranslationKey, error) {
	args := m.Called(id)
	return args.Get(0).(models.TranslationKey), args.Error(1)
}

func (m *TranslationKeyRepository) FindAll(category, search string, limit, offset int) ([]models.TranslationKey, error) {
	args := m.Called(category, search, limit, offset)
	var keys []models.TranslationKey
	if args.Get(0) != nil {
		keys = args.Get(0).([]models.TranslationKey)
	}
	return keys, args.Error(1)
}

func (m *TranslationKeyRepository) Create(key models.TranslationKey) (models.TranslationKey, error) {
	args := m.Called(key)
	return args.Get(0).(models.TranslationKey), args.Error(1)
}

func (m *TranslationKeyRepository) UpdateFields(id string, fields map[string]interface{}) (models.TranslationKey, error) {
	args := m.Called(id, fields)
	return args.Get(0).(models.TranslationKey), args.Error(1)
}

func (m *TranslationKeyRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *TranslationKeyRepository) AllTranslations() ([]map[string]interface{}, error) {
	args := m.Called()
	var docs []map[string]interface{}
	if args.Get(0) != nil {
		docs = args.Get(0).([]map[string]interface{})
	}
	return docs, args.Error(1)
}

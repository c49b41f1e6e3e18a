package services

import (
	"LocalizationAPI/isotime"
	"LocalizationAPI/models"
	"LocalizationAPI/repositories"
	"errors"
	"log/slog"
)

type TranslationKeyService struct {
	Repo repositories.TranslationKeyRepository
}

func NewTranslationKeyService(repo repositories.TranslationKeyRepository) *TranslationKeyService {
	return &TranslationKeyService{Repo: repo}
}

func (s *TranslationKeyService) GetTranslationKey(id string) (models.TranslationKey, error) {
	return s.Repo.FindByID(id)
}

func (s *TranslationKeyService) ListTranslationKeys(category, search string, limit, offset int) ([]models.TranslationKey, error) {
	return s.Repo.FindAll(category, search, limit, offset)
}

// CreateTranslationKey registers a new key. New keys always start with an
// empty translation map.
func (s *TranslationKeyService) CreateTranslationKey(input models.TranslationKeyCreate) (models.TranslationKey, error) {
	return s.Repo.Create(models.TranslationKey{
		Key:          input.Key,
		Category:     input.Category,
		Description:  input.Description,
		Translations: models.TranslationMap{},
	})
}

func (s *TranslationKeyService) UpdateTranslationKey(id string, update models.TranslationKeyUpdate) (models.TranslationKey, error) {
	// Entries sent without a timestamp are stamped on arrival
	for lang, translation := range update.Translations {
		if translation.UpdatedAt.IsZero() {
			translation.UpdatedAt = isotime.Now()
			update.Translations[lang] = translation
		}
	}
	return s.Repo.UpdateFields(id, update.Fields())
}

func (s *TranslationKeyService) DeleteTranslationKey(id string) error {
	return s.Repo.Delete(id)
}

// BulkUpdateTranslations merges new values into several keys at once. Keys
// that do not exist and keys whose write fails are logged and skipped; the
// rest still go through. It reports whether at least one key was updated.
// Fetch failures other than not-found abort the whole run.
func (s *TranslationKeyService) BulkUpdateTranslations(updates map[string]map[string]string, updatedBy string) (bool, error) {
	successful := 0
	for keyID, values := range updates {
		current, err := s.Repo.FindByID(keyID)
		if errors.Is(err, repositories.ErrNotFound) {
			slog.Warn("Translation key not found for bulk update", slog.String("key_id", keyID))
			continue
		}
		if err != nil {
			return false, &repositories.DatabaseError{Op: "bulk update", Err: err}
		}

		merged := models.TranslationMap{}
		for lang, translation := range current.Translations {
			merged[lang] = translation
		}

		// All languages of one key share the same update timestamp
		now := isotime.Now()
		for lang, value := range values {
			merged[lang] = models.Translation{
				Value:     value,
				UpdatedAt: now,
				UpdatedBy: updatedBy,
			}
		}

		if _, err := s.Repo.UpdateFields(keyID, map[string]interface{}{"translations": merged}); err != nil {
			slog.Warn("Failed to update translations during bulk update", slog.String("key_id", keyID), slog.Any("error", err))
			continue
		}
		successful++
	}
	return successful > 0, nil
}

// GetCompletionStats returns, per language, the percentage of keys carrying a
// non-empty value for it. Languages are discovered from the data itself.
func (s *TranslationKeyService) GetCompletionStats() (map[string]float64, error) {
	docs, err := s.Repo.AllTranslations()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return map[string]float64{}, nil
	}

	languages := map[string]bool{}
	for _, doc := range docs {
		for lang := range doc {
			languages[lang] = true
		}
	}
	if len(languages) == 0 {
		return map[string]float64{}, nil
	}

	counts := map[string]int{}
	for _, doc := range docs {
		for lang := range languages {
			entry, ok := doc[lang].(map[string]interface{})
			if !ok {
				continue
			}
			// Only a missing or empty value counts as untranslated; the codec
			// may have turned a timestamp-shaped value into a time
			switch value := entry["value"].(type) {
			case nil:
			case string:
				if value != "" {
					counts[lang]++
				}
			default:
				counts[lang]++
			}
		}
	}

	total := len(docs)
	stats := make(map[string]float64, len(languages))
	for lang := range languages {
		stats[lang] = float64(counts[lang]) / float64(total) * 100
	}
	return stats, nil
}

// GetLocalizations compiles the {key: value} bundle for one locale. Keys
// without a non-empty value for the locale are left out.
func (s *TranslationKeyService) GetLocalizations(locale string) (map[string]string, error) {
	keys, err := s.Repo.FindAll("", "", -1, 0)
	if err != nil {
		return nil, err
	}

	localizations := make(map[string]string, len(keys))
	for _, key := range keys {
		if translation, ok := key.Translations[locale]; ok && translation.Value != "" {
			localizations[key.Key] = translation.Value
		}
	}
	return localizations, nil
}

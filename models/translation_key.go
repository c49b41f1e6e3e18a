package models

import (
	"LocalizationAPI/isotime"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Translation is one localized value together with its audit trail. Entries
// arriving in a request body must carry the value and the editor; a missing
// timestamp is stamped by the service.
type Translation struct {
	Value     string       `json:"value" binding:"required"`
	UpdatedAt isotime.Time `json:"updated_at"`
	UpdatedBy string       `json:"updated_by" binding:"required"`
}

// TranslationMap holds the translations of a key indexed by language code
// ("en", "fr", ...). The whole map is stored in a single JSONB column.
type TranslationMap map[string]Translation

// Value serializes the map for storage. A nil map is written as an empty
// object, never as SQL NULL.
func (m TranslationMap) Value() (driver.Value, error) {
	if m == nil {
		m = TranslationMap{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan loads the map from storage. NULL and JSON null come back as an empty
// map so callers never see nil.
func (m *TranslationMap) Scan(value interface{}) error {
	if value == nil {
		*m = TranslationMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into TranslationMap", value)
	}
	if len(data) == 0 || string(data) == "null" {
		*m = TranslationMap{}
		return nil
	}
	parsed := TranslationMap{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	*m = parsed
	return nil
}

type TranslationKey struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	Key          string         `json:"key" gorm:"unique"`
	Category     string         `json:"category"`
	Description  *string        `json:"description"`
	Translations TranslationMap `json:"translations" gorm:"type:jsonb"`
}

// BeforeCreate assigns a UUID when the caller did not provide an id.
func (k *TranslationKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}

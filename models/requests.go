package models

// TranslationKeyCreate is the payload for registering a new translation key.
// New keys always start with an empty translation map.
type TranslationKeyCreate struct {
	Key         string  `json:"key" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description *string `json:"description"`
}

// TranslationKeyUpdate is a partial update. Nil fields are left untouched.
type TranslationKeyUpdate struct {
	Key          *string        `json:"key"`
	Category     *string        `json:"category"`
	Description  *string        `json:"description"`
	Translations TranslationMap `json:"translations" binding:"omitempty,dive"`
}

// Fields returns the provided fields as a column/value map.
func (u *TranslationKeyUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Key != nil {
		fields["key"] = *u.Key
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Translations != nil {
		fields["translations"] = u.Translations
	}
	return fields
}

// BulkTranslationUpdate carries translation values for several keys at once,
// shaped as {key id: {language code: value}}.
type BulkTranslationUpdate struct {
	Translations map[string]map[string]string `json:"translations" binding:"required"`
	UpdatedBy    string                       `json:"updated_by" binding:"required"`
}

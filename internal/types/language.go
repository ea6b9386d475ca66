package types

// SignLanguage is a reference row for one sign language, e.g. "ru-RSL".
// Code is the primary key and immutable: variants reference it directly.
type SignLanguage struct {
	Code string `gorm:"column:code;primaryKey" json:"code"`
	Name string `gorm:"column:name;not null" json:"name"`
}

func (SignLanguage) TableName() string { return "sign_languages" }

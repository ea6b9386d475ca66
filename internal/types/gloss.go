package types

import (
	"time"

	"gorm.io/datatypes"
)

// Gloss is a canonical concept in the dictionary, e.g. "HELLO". Name is
// stored uppercase; synonyms are a deduplicated set of free-form strings.
type Gloss struct {
	ID          int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string                      `gorm:"column:name;not null;index" json:"name"`
	Synonyms    datatypes.JSONSlice[string] `gorm:"column:synonyms" json:"synonyms,omitempty"`
	Description string                      `gorm:"column:description;type:text" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Gloss) TableName() string { return "glosses" }

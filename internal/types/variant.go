package types

import (
	"time"
)

type Emotion string

const (
	EmotionNeutral  Emotion = "Neutral"
	EmotionHappy    Emotion = "Happy"
	EmotionSad      Emotion = "Sad"
	EmotionAngry    Emotion = "Angry"
	EmotionQuestion Emotion = "Question"
)

func (e Emotion) Valid() bool {
	switch e {
	case EmotionNeutral, EmotionHappy, EmotionSad, EmotionAngry, EmotionQuestion:
		return true
	}
	return false
}

type VariantType string

const (
	VariantTypeLexical        VariantType = "lexical"
	VariantTypeFingerspelling VariantType = "fingerspelling"
	VariantTypeClassifier     VariantType = "classifier"
)

func (t VariantType) Valid() bool {
	switch t {
	case VariantTypeLexical, VariantTypeFingerspelling, VariantTypeClassifier:
		return true
	}
	return false
}

// SignVariant links a gloss to an animation asset in one language: "this
// gloss, in this language, performed with this emotion/type, using this
// asset". Several variants may share a single asset.
type SignVariant struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	GlossID    int64  `gorm:"column:gloss_id;not null;index" json:"gloss_id"`
	AssetID    int64  `gorm:"column:asset_id;not null;index" json:"asset_id"`
	LanguageID string `gorm:"column:language_id;not null;index" json:"language_id"`

	Emotion  Emotion     `gorm:"column:emotion;not null;default:'Neutral'" json:"emotion"`
	Type     VariantType `gorm:"column:type;not null;default:'lexical'" json:"type"`
	Priority int         `gorm:"column:priority;not null;default:50" json:"priority"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Gloss    *Gloss          `gorm:"foreignKey:GlossID;references:ID;constraint:OnDelete:RESTRICT" json:"gloss,omitempty"`
	Asset    *AnimationAsset `gorm:"foreignKey:AssetID;references:ID;constraint:OnDelete:RESTRICT" json:"asset,omitempty"`
	Language *SignLanguage   `gorm:"foreignKey:LanguageID;references:Code;constraint:OnDelete:RESTRICT" json:"language,omitempty"`
}

func (SignVariant) TableName() string { return "sign_variants" }

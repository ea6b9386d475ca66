package types

import (
	"time"

	"gorm.io/datatypes"
)

// AnimationAsset is one stored media blob plus the technical metadata
// extracted from it. ContentHash is the dedup key: uploading identical bytes
// twice resolves to the same row.
type AnimationAsset struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FileURL     string `gorm:"column:file_url;not null" json:"file_url"`
	FileKey     string `gorm:"column:file_key;not null" json:"file_key"`
	ContentHash string `gorm:"column:content_hash;not null;uniqueIndex" json:"content_hash"`

	Duration   *float64 `gorm:"column:duration" json:"duration,omitempty"`
	Framerate  *int     `gorm:"column:framerate" json:"framerate,omitempty"`
	FrameCount *int     `gorm:"column:frame_count" json:"frame_count,omitempty"`

	TransitionIn  *string        `gorm:"column:transition_in" json:"transition_in,omitempty"`
	TransitionOut *string        `gorm:"column:transition_out" json:"transition_out,omitempty"`
	Blendshapes   datatypes.JSON `gorm:"column:blendshapes;type:jsonb" json:"blendshapes,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (AnimationAsset) TableName() string { return "animation_assets" }

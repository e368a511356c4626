package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ForumPost is an EchoForum entry. Accessibility flags describe how the
// post should be rendered; audio and attachment URLs are optional.
type ForumPost struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string                      `gorm:"not null;column:title" json:"title"`
	Content       string                      `gorm:"not null;column:content" json:"content"`
	Author        string                      `gorm:"not null;column:author" json:"author"`
	Tags          datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	LargeText     bool                        `gorm:"column:large_text" json:"large_text"`
	HasAudio      bool                        `gorm:"column:has_audio" json:"has_audio"`
	Subtitles     bool                        `gorm:"column:subtitles" json:"subtitles"`
	AudioURL      *string                     `gorm:"column:audio_url" json:"audio_url"`
	AttachmentURL *string                     `gorm:"column:attachment_url" json:"attachment_url"`
	CreatedAt     time.Time                   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"not null" json:"updated_at"`
}

func (ForumPost) TableName() string {
	return "forum_post"
}

package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "alisto_backend/internals/helpers"
)

type NewsArticleModel struct {
	ID                int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title             string         `gorm:"size:200;not null" json:"title"`
	Summary           *string        `gorm:"size:500" json:"summary,omitempty"`
	FullContent       string         `gorm:"not null" json:"fullContent"`
	ImageURL          *string        `gorm:"column:image_url;size:500" json:"imageUrl,omitempty"`
	PublishedDate     *time.Time     `gorm:"index" json:"publishedDate,omitempty"`
	PublishedTime     *string        `gorm:"size:20" json:"publishedTime,omitempty"`
	Location          string         `gorm:"size:200;not null" json:"location"`
	ExpectedAttendees *string        `gorm:"size:100" json:"expectedAttendees,omitempty"`
	Category          NewsCategory   `gorm:"size:30;not null;index" json:"category"`
	Author            string         `gorm:"size:100;not null" json:"author"`
	Tags              datatypes.JSON `gorm:"not null" json:"tags"`
	IsFeatured        bool           `gorm:"not null;index" json:"isFeatured"`
	IsTrending        bool           `gorm:"not null;index" json:"isTrending"`
	ViewCount         int            `gorm:"not null" json:"viewCount"`
	Status            ContentStatus  `gorm:"size:20;not null;index" json:"status"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (NewsArticleModel) TableName() string {
	return "news_articles"
}

func (m *NewsArticleModel) BeforeCreate(tx *gorm.DB) error {
	if len(m.Tags) == 0 {
		m.Tags = helper.JSONStrings(nil)
	}
	if m.Status == "" {
		m.Status = StatusDraft
	}
	return nil
}

package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "alisto_backend/internals/helpers"
)

const DefaultRating = 5.0

type TouristSpotModel struct {
	ID           int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"size:200;not null" json:"name"`
	Description  string         `gorm:"not null" json:"description"`
	ImageURL     string         `gorm:"column:image_url;size:500;not null" json:"imageUrl"`
	Rating       float64        `gorm:"type:decimal(3,2);not null;check:chk_tourist_spots_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Location     string         `gorm:"size:200;not null" json:"location"`
	Coordinates  *string        `gorm:"size:100" json:"coordinates,omitempty"`
	Address      string         `gorm:"size:500;not null" json:"address"`
	OpeningHours *string        `gorm:"size:100" json:"openingHours,omitempty"`
	EntryFee     *string        `gorm:"size:100" json:"entryFee,omitempty"`
	Highlights   datatypes.JSON `gorm:"not null" json:"highlights"`
	TravelTime   *string        `gorm:"size:100" json:"travelTime,omitempty"`
	IsActive     bool           `gorm:"not null;index" json:"isActive"`
	ViewCount    int            `gorm:"not null" json:"viewCount"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (TouristSpotModel) TableName() string {
	return "tourist_spots"
}

func (m *TouristSpotModel) BeforeCreate(tx *gorm.DB) error {
	if len(m.Highlights) == 0 {
		m.Highlights = helper.JSONStrings(nil)
	}
	if m.Rating == 0 {
		m.Rating = DefaultRating
	}
	return nil
}

package model

import (
	"time"

	"gorm.io/datatypes"
)

type ServiceCategoryModel struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500;not null" json:"description"`
	IconName    string `gorm:"size:50;not null" json:"iconName"`
	IsActive    bool   `gorm:"not null" json:"isActive"`
	SortOrder   int    `gorm:"not null" json:"sortOrder"`

	Services []CityServiceModel `gorm:"foreignKey:CategoryID" json:"services,omitempty"`
}

func (ServiceCategoryModel) TableName() string {
	return "service_categories"
}

type CityServiceModel struct {
	ID             int            `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID     int            `gorm:"not null;index" json:"categoryId"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	Description    string         `gorm:"size:500;not null" json:"description"`
	Fee            float64        `gorm:"type:decimal(10,2);not null" json:"fee"`
	ProcessingTime string         `gorm:"size:50;not null" json:"processingTime"`
	RequiredDocs   datatypes.JSON `gorm:"column:required_documents;not null" json:"requiredDocuments"`
	IsActive       bool           `gorm:"not null;index" json:"isActive"`
	OfficeLocation string         `gorm:"size:200;not null" json:"officeLocation"`
	ContactNumber  *string        `gorm:"size:20" json:"contactNumber,omitempty"`
	OperatingHours string         `gorm:"size:100;not null" json:"operatingHours"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`

	Category *ServiceCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"`
}

func (CityServiceModel) TableName() string {
	return "city_services"
}

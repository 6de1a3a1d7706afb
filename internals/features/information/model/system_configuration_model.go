package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConfigDataType string

const (
	ConfigString  ConfigDataType = "String"
	ConfigNumber  ConfigDataType = "Number"
	ConfigBoolean ConfigDataType = "Boolean"
	ConfigJSON    ConfigDataType = "Json"
)

var ConfigDataTypes = []ConfigDataType{ConfigString, ConfigNumber, ConfigBoolean, ConfigJSON}

func (t ConfigDataType) Valid() bool {
	for _, v := range ConfigDataTypes {
		if v == t {
			return true
		}
	}
	return false
}

type SystemConfigurationModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Key         string         `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value       string         `gorm:"not null" json:"value"`
	Description *string        `gorm:"size:500" json:"description,omitempty"`
	DataType    ConfigDataType `gorm:"size:20;not null" json:"dataType"`
	IsPublic    bool           `gorm:"not null" json:"isPublic"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SystemConfigurationModel) TableName() string {
	return "system_configurations"
}

func (m *SystemConfigurationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

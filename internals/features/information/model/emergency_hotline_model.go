package model

type EmergencyHotlineModel struct {
	ID             int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string  `gorm:"size:100;not null" json:"title"`
	PhoneNumber    string  `gorm:"size:20;not null" json:"phoneNumber"`
	Description    string  `gorm:"size:500;not null" json:"description"`
	IsEmergency    bool    `gorm:"not null" json:"isEmergency"`
	Department     *string `gorm:"size:100" json:"department,omitempty"`
	OperatingHours *string `gorm:"size:100" json:"operatingHours,omitempty"`
	IsActive       bool    `gorm:"not null;index" json:"isActive"`
	SortOrder      int     `gorm:"not null" json:"sortOrder"`
}

func (EmergencyHotlineModel) TableName() string {
	return "emergency_hotlines"
}

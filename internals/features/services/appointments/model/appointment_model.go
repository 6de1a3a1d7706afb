package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	csModel "alisto_backend/internals/features/services/city_services/model"
	uModel "alisto_backend/internals/features/users/user/model"
)

type AppointmentModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_user_status,priority:1" json:"userId"`
	ServiceID       int               `gorm:"not null;index" json:"serviceId"`
	ReferenceNumber string            `gorm:"size:20;not null;uniqueIndex" json:"referenceNumber"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointmentDate"`
	AppointmentTime string            `gorm:"size:20;not null" json:"appointmentTime"`
	Status          AppointmentStatus `gorm:"size:20;not null;index;index:idx_appointments_user_status,priority:2" json:"status"`
	TotalFee        float64           `gorm:"type:decimal(10,2);not null" json:"totalFee"`
	PaymentStatus   PaymentStatus     `gorm:"size:20;not null" json:"paymentStatus"`
	Notes           *string           `json:"notes,omitempty"`

	ApplicantFirstName     string  `gorm:"size:100;not null" json:"applicantFirstName"`
	ApplicantLastName      string  `gorm:"size:100;not null" json:"applicantLastName"`
	ApplicantMiddleName    *string `gorm:"size:100" json:"applicantMiddleName,omitempty"`
	ApplicantContactNumber string  `gorm:"size:20;not null" json:"applicantContactNumber"`
	ApplicantEmail         *string `gorm:"size:255" json:"applicantEmail,omitempty"`
	ApplicantAddress       string  `gorm:"size:500;not null" json:"applicantAddress"`

	ServiceSpecificData datatypes.JSON `gorm:"not null" json:"serviceSpecificData"`

	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason *string    `gorm:"size:500" json:"cancellationReason,omitempty"`

	User    *uModel.UserModel         `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user,omitempty"`
	Service *csModel.CityServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT" json:"service,omitempty"`
}

func (AppointmentModel) TableName() string {
	return "appointments"
}

func (a *AppointmentModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if len(a.ServiceSpecificData) == 0 {
		a.ServiceSpecificData = datatypes.JSON("{}")
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"

	apptModel "alisto_backend/internals/features/services/appointments/model"
)

// Each specialized table is keyed by the appointment it details and is
// removed together with it.

type CivilRegistryRequestModel struct {
	AppointmentID  uuid.UUID         `gorm:"type:uuid;primaryKey" json:"appointmentId"`
	DocumentType   CivilDocumentType `gorm:"size:30;not null;index" json:"documentType"`
	Purpose        string            `gorm:"size:100;not null" json:"purpose"`
	NumberOfCopies int               `gorm:"not null" json:"numberOfCopies"`
	RegistryNumber *string           `gorm:"size:50" json:"registryNumber,omitempty"`
	RegistryDate   *time.Time        `json:"registryDate,omitempty"`
	RegistryPlace  *string           `gorm:"size:200" json:"registryPlace,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	Appointment *apptModel.AppointmentModel `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CivilRegistryRequestModel) TableName() string { return "civil_registry_requests" }
func (CivilRegistryRequestModel) Kind() RequestKind { return KindCivilRegistry }
func (m CivilRegistryRequestModel) OwnerID() uuid.UUID { return m.AppointmentID }

type BusinessPermitRequestModel struct {
	AppointmentID     uuid.UUID           `gorm:"type:uuid;primaryKey" json:"appointmentId"`
	ServiceType       BusinessServiceType `gorm:"size:30;not null;index" json:"serviceType"`
	BusinessName      string              `gorm:"size:200;not null" json:"businessName"`
	BusinessType      string              `gorm:"size:100;not null" json:"businessType"`
	BusinessAddress   string              `gorm:"size:500;not null" json:"businessAddress"`
	OwnerName         string              `gorm:"size:100;not null" json:"ownerName"`
	TinNumber         *string             `gorm:"size:20" json:"tinNumber,omitempty"`
	CapitalInvestment *float64            `gorm:"type:decimal(15,2)" json:"capitalInvestment,omitempty"`
	CreatedAt         time.Time           `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`

	Appointment *apptModel.AppointmentModel `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (BusinessPermitRequestModel) TableName() string { return "business_permit_requests" }
func (BusinessPermitRequestModel) Kind() RequestKind { return KindBusinessPermit }
func (m BusinessPermitRequestModel) OwnerID() uuid.UUID { return m.AppointmentID }

type HealthServiceRequestModel struct {
	AppointmentID      uuid.UUID         `gorm:"type:uuid;primaryKey" json:"appointmentId"`
	ServiceType        HealthServiceType `gorm:"size:30;not null;index" json:"serviceType"`
	CertificatePurpose *string           `gorm:"size:100" json:"certificatePurpose,omitempty"`
	AssistanceType     *string           `gorm:"size:100" json:"assistanceType,omitempty"`
	MedicalHistory     *string           `json:"medicalHistory,omitempty"`
	CurrentMedications *string           `json:"currentMedications,omitempty"`
	Allergies          *string           `gorm:"size:500" json:"allergies,omitempty"`
	Symptoms           *string           `json:"symptoms,omitempty"`
	PreferredDoctor    *string           `gorm:"size:100" json:"preferredDoctor,omitempty"`
	CreatedAt          time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	Appointment *apptModel.AppointmentModel `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HealthServiceRequestModel) TableName() string { return "health_service_requests" }
func (HealthServiceRequestModel) Kind() RequestKind { return KindHealthService }
func (m HealthServiceRequestModel) OwnerID() uuid.UUID { return m.AppointmentID }

type EducationServiceRequestModel struct {
	AppointmentID     uuid.UUID            `gorm:"type:uuid;primaryKey" json:"appointmentId"`
	ServiceType       EducationServiceType `gorm:"size:30;not null;index" json:"serviceType"`
	StudentFirstName  string               `gorm:"size:100;not null" json:"studentFirstName"`
	StudentLastName   string               `gorm:"size:100;not null" json:"studentLastName"`
	StudentMiddleName *string              `gorm:"size:100" json:"studentMiddleName,omitempty"`
	StudentBirthDate  time.Time            `gorm:"not null" json:"studentBirthDate"`
	StudentAddress    string               `gorm:"size:500;not null" json:"studentAddress"`
	GradeLevel        *string              `gorm:"size:50" json:"gradeLevel,omitempty"`
	SchoolName        *string              `gorm:"size:200" json:"schoolName,omitempty"`
	GPA               *string              `gorm:"column:gpa;size:10" json:"gpa,omitempty"`
	ScholarshipType   *string              `gorm:"size:100" json:"scholarshipType,omitempty"`
	VocationalCourse  *string              `gorm:"size:100" json:"vocationalCourse,omitempty"`
	ParentName        string               `gorm:"size:100;not null" json:"parentName"`
	ParentOccupation  *string              `gorm:"size:100" json:"parentOccupation,omitempty"`
	MonthlyIncome     *float64             `gorm:"type:decimal(10,2)" json:"monthlyIncome,omitempty"`
	FamilySize        *int                 `json:"familySize,omitempty"`
	CreatedAt         time.Time            `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time            `gorm:"autoUpdateTime" json:"updatedAt"`

	Appointment *apptModel.AppointmentModel `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EducationServiceRequestModel) TableName() string { return "education_service_requests" }
func (EducationServiceRequestModel) Kind() RequestKind { return KindEducationService }
func (m EducationServiceRequestModel) OwnerID() uuid.UUID { return m.AppointmentID }

type SocialServiceRequestModel struct {
	AppointmentID  uuid.UUID         `gorm:"type:uuid;primaryKey" json:"appointmentId"`
	ServiceType    SocialServiceType `gorm:"size:30;not null;index" json:"serviceType"`
	DisabilityType *string           `gorm:"size:100" json:"disabilityType,omitempty"`
	AssistanceType *string           `gorm:"size:100" json:"assistanceType,omitempty"`
	MonthlyIncome  *float64          `gorm:"type:decimal(10,2)" json:"monthlyIncome,omitempty"`
	FamilySize     *int              `json:"familySize,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	Appointment *apptModel.AppointmentModel `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SocialServiceRequestModel) TableName() string { return "social_service_requests" }
func (SocialServiceRequestModel) Kind() RequestKind { return KindSocialService }
func (m SocialServiceRequestModel) OwnerID() uuid.UUID { return m.AppointmentID }

type TaxServiceRequestModel struct {
	AppointmentID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"appointmentId"`
	ServiceType     TaxServiceType `gorm:"size:30;not null;index" json:"serviceType"`
	TaxYear         int            `gorm:"not null" json:"taxYear"`
	PropertyType    *string        `gorm:"size:100" json:"propertyType,omitempty"`
	PropertyAddress *string        `gorm:"size:500" json:"propertyAddress,omitempty"`
	PropertyTDN     *string        `gorm:"column:property_tdn;size:50" json:"propertyTdn,omitempty"`
	BusinessName    *string        `gorm:"size:200" json:"businessName,omitempty"`
	BusinessTIN     *string        `gorm:"column:business_tin;size:20" json:"businessTin,omitempty"`
	AssessedValue   *float64       `gorm:"type:decimal(15,2)" json:"assessedValue,omitempty"`
	ExemptionType   *string        `gorm:"size:100" json:"exemptionType,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`

	Appointment *apptModel.AppointmentModel `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TaxServiceRequestModel) TableName() string { return "tax_service_requests" }
func (TaxServiceRequestModel) Kind() RequestKind { return KindTaxService }
func (m TaxServiceRequestModel) OwnerID() uuid.UUID { return m.AppointmentID }

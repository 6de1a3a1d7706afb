package dto

import (
	"time"

	"github.com/google/uuid"

	srModel "alisto_backend/internals/features/services/service_requests/model"
)

type EducationServiceFields struct {
	ServiceType       srModel.EducationServiceType `json:"serviceType" validate:"required,enum"`
	StudentFirstName  string                       `json:"studentFirstName" validate:"required,max=100"`
	StudentLastName   string                       `json:"studentLastName" validate:"required,max=100"`
	StudentMiddleName *string                      `json:"studentMiddleName" validate:"omitempty,max=100"`
	StudentBirthDate  time.Time                    `json:"studentBirthDate" validate:"required"`
	StudentAddress    string                       `json:"studentAddress" validate:"required,max=500"`
	GradeLevel        *string                      `json:"gradeLevel" validate:"omitempty,max=50"`
	SchoolName        *string                      `json:"schoolName" validate:"omitempty,max=200"`
	GPA               *string                      `json:"gpa" validate:"omitempty,max=10"`
	ScholarshipType   *string                      `json:"scholarshipType" validate:"omitempty,max=100"`
	VocationalCourse  *string                      `json:"vocationalCourse" validate:"omitempty,max=100"`
	ParentName        string                       `json:"parentName" validate:"required,max=100"`
	ParentOccupation  *string                      `json:"parentOccupation" validate:"omitempty,max=100"`
	MonthlyIncome     *float64                     `json:"monthlyIncome" validate:"omitempty,gte=0"`
	FamilySize        *int                         `json:"familySize" validate:"omitempty,min=1"`
}

func (f *EducationServiceFields) ApplyTo(m *srModel.EducationServiceRequestModel) {
	m.ServiceType = f.ServiceType
	m.StudentFirstName = trim(f.StudentFirstName)
	m.StudentLastName = trim(f.StudentLastName)
	m.StudentMiddleName = trimPtr(f.StudentMiddleName)
	m.StudentBirthDate = f.StudentBirthDate
	m.StudentAddress = trim(f.StudentAddress)
	m.GradeLevel = trimPtr(f.GradeLevel)
	m.SchoolName = trimPtr(f.SchoolName)
	m.GPA = trimPtr(f.GPA)
	m.ScholarshipType = trimPtr(f.ScholarshipType)
	m.VocationalCourse = trimPtr(f.VocationalCourse)
	m.ParentName = trim(f.ParentName)
	m.ParentOccupation = trimPtr(f.ParentOccupation)
	m.MonthlyIncome = f.MonthlyIncome
	m.FamilySize = f.FamilySize
}

type CreateEducationServiceRequest struct {
	AppointmentID uuid.UUID `json:"appointmentId" validate:"required"`
	EducationServiceFields
}

func (r *CreateEducationServiceRequest) ToModel() *srModel.EducationServiceRequestModel {
	m := &srModel.EducationServiceRequestModel{AppointmentID: r.AppointmentID}
	r.ApplyTo(m)
	return m
}

type EducationServiceRequestDTO struct {
	OwnerDTO
	EducationServiceFields
}

func ToEducationServiceDTO(m *srModel.EducationServiceRequestModel) EducationServiceRequestDTO {
	return EducationServiceRequestDTO{
		OwnerDTO: ownerOf(m.AppointmentID, m.Appointment, m.CreatedAt, m.UpdatedAt),
		EducationServiceFields: EducationServiceFields{
			ServiceType:       m.ServiceType,
			StudentFirstName:  m.StudentFirstName,
			StudentLastName:   m.StudentLastName,
			StudentMiddleName: m.StudentMiddleName,
			StudentBirthDate:  m.StudentBirthDate,
			StudentAddress:    m.StudentAddress,
			GradeLevel:        m.GradeLevel,
			SchoolName:        m.SchoolName,
			GPA:               m.GPA,
			ScholarshipType:   m.ScholarshipType,
			VocationalCourse:  m.VocationalCourse,
			ParentName:        m.ParentName,
			ParentOccupation:  m.ParentOccupation,
			MonthlyIncome:     m.MonthlyIncome,
			FamilySize:        m.FamilySize,
		},
	}
}

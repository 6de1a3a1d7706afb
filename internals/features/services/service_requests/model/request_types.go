package model

import "github.com/google/uuid"

// RequestKind names the specialized table owning an appointment.
type RequestKind string

const (
	KindCivilRegistry    RequestKind = "CivilRegistry"
	KindBusinessPermit   RequestKind = "BusinessPermit"
	KindHealthService    RequestKind = "HealthService"
	KindEducationService RequestKind = "EducationService"
	KindSocialService    RequestKind = "SocialService"
	KindTaxService       RequestKind = "TaxService"
)

var labels = map[RequestKind]string{
	KindCivilRegistry:    "civil registry",
	KindBusinessPermit:   "business permit",
	KindHealthService:    "health service",
	KindEducationService: "education service",
	KindSocialService:    "social service",
	KindTaxService:       "tax service",
}

// Label is the lower-case name used in messages, e.g. "business permit".
func (k RequestKind) Label() string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

// Request is implemented by every specialized request model. The owning
// appointment id is also the primary key.
type Request interface {
	TableName() string
	Kind() RequestKind
	OwnerID() uuid.UUID
}

// NewRequest returns an empty model for kind, used when probing tables.
func NewRequest(kind RequestKind) Request {
	switch kind {
	case KindCivilRegistry:
		return &CivilRegistryRequestModel{}
	case KindBusinessPermit:
		return &BusinessPermitRequestModel{}
	case KindHealthService:
		return &HealthServiceRequestModel{}
	case KindEducationService:
		return &EducationServiceRequestModel{}
	case KindSocialService:
		return &SocialServiceRequestModel{}
	case KindTaxService:
		return &TaxServiceRequestModel{}
	}
	return nil
}

var Kinds = []RequestKind{
	KindCivilRegistry, KindBusinessPermit, KindHealthService,
	KindEducationService, KindSocialService, KindTaxService,
}

/* =======================================================
   Enums
   ======================================================= */

type CivilDocumentType string

const (
	DocBirthCertificate    CivilDocumentType = "BirthCertificate"
	DocDeathCertificate    CivilDocumentType = "DeathCertificate"
	DocMarriageCertificate CivilDocumentType = "MarriageCertificate"
	DocCENOMAR             CivilDocumentType = "CENOMAR"
	DocCertifiedTrueCopy   CivilDocumentType = "CertifiedTrueCopy"
	DocLateRegistration    CivilDocumentType = "LateRegistration"
)

var CivilDocumentTypes = []CivilDocumentType{
	DocBirthCertificate, DocDeathCertificate, DocMarriageCertificate,
	DocCENOMAR, DocCertifiedTrueCopy, DocLateRegistration,
}

func (t CivilDocumentType) Valid() bool { return contains(CivilDocumentTypes, t) }

type BusinessServiceType string

const (
	BusinessNewPermit BusinessServiceType = "NewPermit"
	BusinessRenewal   BusinessServiceType = "Renewal"
	BusinessAmendment BusinessServiceType = "Amendment"
	BusinessClosure   BusinessServiceType = "Closure"
)

var BusinessServiceTypes = []BusinessServiceType{
	BusinessNewPermit, BusinessRenewal, BusinessAmendment, BusinessClosure,
}

func (t BusinessServiceType) Valid() bool { return contains(BusinessServiceTypes, t) }

type HealthServiceType string

const (
	HealthCertificate        HealthServiceType = "HealthCertificate"
	HealthMedicalClearance   HealthServiceType = "MedicalClearance"
	HealthVaccinationRecord  HealthServiceType = "VaccinationRecord"
	HealthMedicalAssistance  HealthServiceType = "MedicalAssistance"
	HealthMentalConsultation HealthServiceType = "MentalHealthConsultation"
	HealthMaternalCare       HealthServiceType = "MaternalCare"
)

var HealthServiceTypes = []HealthServiceType{
	HealthCertificate, HealthMedicalClearance, HealthVaccinationRecord,
	HealthMedicalAssistance, HealthMentalConsultation, HealthMaternalCare,
}

func (t HealthServiceType) Valid() bool { return contains(HealthServiceTypes, t) }

type EducationServiceType string

const (
	EducationScholarship           EducationServiceType = "Scholarship"
	EducationEnrollment            EducationServiceType = "Enrollment"
	EducationVocationalTraining    EducationServiceType = "VocationalTraining"
	EducationEducationalAssistance EducationServiceType = "EducationalAssistance"
)

var EducationServiceTypes = []EducationServiceType{
	EducationScholarship, EducationEnrollment, EducationVocationalTraining, EducationEducationalAssistance,
}

func (t EducationServiceType) Valid() bool { return contains(EducationServiceTypes, t) }

type SocialServiceType string

const (
	SocialSeniorCitizenID     SocialServiceType = "SeniorCitizenId"
	SocialPwdID               SocialServiceType = "PwdId"
	SocialSoloParentID        SocialServiceType = "SoloParentId"
	SocialFinancialAssistance SocialServiceType = "FinancialAssistance"
	SocialMedicalAssistance   SocialServiceType = "MedicalAssistance"
	SocialBurialAssistance    SocialServiceType = "BurialAssistance"
)

var SocialServiceTypes = []SocialServiceType{
	SocialSeniorCitizenID, SocialPwdID, SocialSoloParentID,
	SocialFinancialAssistance, SocialMedicalAssistance, SocialBurialAssistance,
}

func (t SocialServiceType) Valid() bool { return contains(SocialServiceTypes, t) }

type TaxServiceType string

const (
	TaxRPTPayment   TaxServiceType = "RPTPayment"
	TaxRPTClearance TaxServiceType = "RPTClearance"
	TaxBusinessTax  TaxServiceType = "BusinessTax"
	TaxClearance    TaxServiceType = "TaxClearance"
	TaxAssessment   TaxServiceType = "TaxAssessment"
	TaxExemption    TaxServiceType = "TaxExemption"
)

var TaxServiceTypes = []TaxServiceType{
	TaxRPTPayment, TaxRPTClearance, TaxBusinessTax, TaxClearance, TaxAssessment, TaxExemption,
}

func (t TaxServiceType) Valid() bool { return contains(TaxServiceTypes, t) }

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

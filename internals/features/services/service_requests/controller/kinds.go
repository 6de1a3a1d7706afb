package controller

import (
	"gorm.io/gorm"

	srDTO "alisto_backend/internals/features/services/service_requests/dto"
	srModel "alisto_backend/internals/features/services/service_requests/model"
)

type (
	CivilRegistryController    = RequestController[srModel.CivilRegistryRequestModel, *srModel.CivilRegistryRequestModel]
	BusinessPermitController   = RequestController[srModel.BusinessPermitRequestModel, *srModel.BusinessPermitRequestModel]
	HealthServiceController    = RequestController[srModel.HealthServiceRequestModel, *srModel.HealthServiceRequestModel]
	EducationServiceController = RequestController[srModel.EducationServiceRequestModel, *srModel.EducationServiceRequestModel]
	SocialServiceController    = RequestController[srModel.SocialServiceRequestModel, *srModel.SocialServiceRequestModel]
	TaxServiceController       = RequestController[srModel.TaxServiceRequestModel, *srModel.TaxServiceRequestModel]
)

func NewCivilRegistryController(db *gorm.DB) *CivilRegistryController {
	return &CivilRegistryController{
		DB:         db,
		Kind:       srModel.KindCivilRegistry,
		Path:       "/api/civilregistry",
		TypeParam:  "documentType",
		TypeColumn: "document_type",
		TypeValues: enumStrings(srModel.CivilDocumentTypes),
		NewCreate: func() Creator[*srModel.CivilRegistryRequestModel] {
			return &srDTO.CreateCivilRegistryRequest{}
		},
		NewUpdate: func() Updater[*srModel.CivilRegistryRequestModel] {
			return &srDTO.CivilRegistryFields{}
		},
		ToDTO: func(m *srModel.CivilRegistryRequestModel) any { return srDTO.ToCivilRegistryDTO(m) },
	}
}

func NewBusinessPermitController(db *gorm.DB) *BusinessPermitController {
	return &BusinessPermitController{
		DB:         db,
		Kind:       srModel.KindBusinessPermit,
		Path:       "/api/businesspermits",
		TypeParam:  "serviceType",
		TypeColumn: "service_type",
		TypeValues: enumStrings(srModel.BusinessServiceTypes),
		NewCreate: func() Creator[*srModel.BusinessPermitRequestModel] {
			return &srDTO.CreateBusinessPermitRequest{}
		},
		NewUpdate: func() Updater[*srModel.BusinessPermitRequestModel] {
			return &srDTO.BusinessPermitFields{}
		},
		ToDTO: func(m *srModel.BusinessPermitRequestModel) any { return srDTO.ToBusinessPermitDTO(m) },
	}
}

func NewHealthServiceController(db *gorm.DB) *HealthServiceController {
	return &HealthServiceController{
		DB:         db,
		Kind:       srModel.KindHealthService,
		Path:       "/api/healthservices",
		TypeParam:  "serviceType",
		TypeColumn: "service_type",
		TypeValues: enumStrings(srModel.HealthServiceTypes),
		NewCreate: func() Creator[*srModel.HealthServiceRequestModel] {
			return &srDTO.CreateHealthServiceRequest{}
		},
		NewUpdate: func() Updater[*srModel.HealthServiceRequestModel] {
			return &srDTO.HealthServiceFields{}
		},
		ToDTO: func(m *srModel.HealthServiceRequestModel) any { return srDTO.ToHealthServiceDTO(m) },
	}
}

func NewEducationServiceController(db *gorm.DB) *EducationServiceController {
	return &EducationServiceController{
		DB:         db,
		Kind:       srModel.KindEducationService,
		Path:       "/api/educationservices",
		TypeParam:  "serviceType",
		TypeColumn: "service_type",
		TypeValues: enumStrings(srModel.EducationServiceTypes),
		NewCreate: func() Creator[*srModel.EducationServiceRequestModel] {
			return &srDTO.CreateEducationServiceRequest{}
		},
		NewUpdate: func() Updater[*srModel.EducationServiceRequestModel] {
			return &srDTO.EducationServiceFields{}
		},
		ToDTO: func(m *srModel.EducationServiceRequestModel) any { return srDTO.ToEducationServiceDTO(m) },
	}
}

func NewSocialServiceController(db *gorm.DB) *SocialServiceController {
	return &SocialServiceController{
		DB:         db,
		Kind:       srModel.KindSocialService,
		Path:       "/api/socialservices",
		TypeParam:  "serviceType",
		TypeColumn: "service_type",
		TypeValues: enumStrings(srModel.SocialServiceTypes),
		NewCreate: func() Creator[*srModel.SocialServiceRequestModel] {
			return &srDTO.CreateSocialServiceRequest{}
		},
		NewUpdate: func() Updater[*srModel.SocialServiceRequestModel] {
			return &srDTO.SocialServiceFields{}
		},
		ToDTO: func(m *srModel.SocialServiceRequestModel) any { return srDTO.ToSocialServiceDTO(m) },
	}
}

func NewTaxServiceController(db *gorm.DB) *TaxServiceController {
	return &TaxServiceController{
		DB:         db,
		Kind:       srModel.KindTaxService,
		Path:       "/api/taxservices",
		TypeParam:  "serviceType",
		TypeColumn: "service_type",
		TypeValues: enumStrings(srModel.TaxServiceTypes),
		NewCreate: func() Creator[*srModel.TaxServiceRequestModel] {
			return &srDTO.CreateTaxServiceRequest{}
		},
		NewUpdate: func() Updater[*srModel.TaxServiceRequestModel] {
			return &srDTO.TaxServiceFields{}
		},
		ToDTO: func(m *srModel.TaxServiceRequestModel) any { return srDTO.ToTaxServiceDTO(m) },
	}
}

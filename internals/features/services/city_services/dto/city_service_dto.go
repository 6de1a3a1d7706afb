package dto

import (
	csModel "alisto_backend/internals/features/services/city_services/model"
	helper "alisto_backend/internals/helpers"
)

type ServiceCategoryDTO struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	IconName    string           `json:"iconName"`
	IsActive    bool             `json:"isActive"`
	SortOrder   int              `json:"sortOrder"`
	Services    []CityServiceDTO `json:"services"`
}

type CityServiceDTO struct {
	ID                int     `json:"id"`
	CategoryID        int     `json:"categoryId"`
	CategoryName      string  `json:"categoryName,omitempty"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Fee               float64 `json:"fee"`
	ProcessingTime    string  `json:"processingTime"`
	RequiredDocuments []string `json:"requiredDocuments"`
	IsActive          bool    `json:"isActive"`
	OfficeLocation    string  `json:"officeLocation"`
	ContactNumber     *string `json:"contactNumber"`
	OperatingHours    string  `json:"operatingHours"`
}

func ToCityServiceDTO(m *csModel.CityServiceModel) CityServiceDTO {
	d := CityServiceDTO{
		ID:                m.ID,
		CategoryID:        m.CategoryID,
		Name:              m.Name,
		Description:       m.Description,
		Fee:               m.Fee,
		ProcessingTime:    m.ProcessingTime,
		RequiredDocuments: helper.StringsFromJSON(m.RequiredDocs),
		IsActive:          m.IsActive,
		OfficeLocation:    m.OfficeLocation,
		ContactNumber:     m.ContactNumber,
		OperatingHours:    m.OperatingHours,
	}
	if m.Category != nil {
		d.CategoryName = m.Category.Name
	}
	return d
}

func ToCityServiceDTOs(rows []csModel.CityServiceModel) []CityServiceDTO {
	out := make([]CityServiceDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToCityServiceDTO(&rows[i]))
	}
	return out
}

func ToServiceCategoryDTO(m *csModel.ServiceCategoryModel) ServiceCategoryDTO {
	return ServiceCategoryDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IconName:    m.IconName,
		IsActive:    m.IsActive,
		SortOrder:   m.SortOrder,
		Services:    ToCityServiceDTOs(m.Services),
	}
}

func ToServiceCategoryDTOs(rows []csModel.ServiceCategoryModel) []ServiceCategoryDTO {
	out := make([]ServiceCategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToServiceCategoryDTO(&rows[i]))
	}
	return out
}

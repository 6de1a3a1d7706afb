package dto

import (
	"strings"
	"time"

	tsModel "alisto_backend/internals/features/content/tourist_spots/model"
	helper "alisto_backend/internals/helpers"
)

// TouristSpotFields is shared by the JSON and multipart variants. Highlights
// are read separately for forms. A zero rating means the default of 5.
type TouristSpotFields struct {
	Name         string   `json:"name" form:"name" validate:"required,max=200"`
	Description  string   `json:"description" form:"description" validate:"required"`
	ImageURL     string   `json:"imageUrl" form:"-" validate:"omitempty,max=500"`
	Rating       float64  `json:"rating" form:"rating" validate:"omitempty,min=1,max=5"`
	Location     string   `json:"location" form:"location" validate:"required,max=200"`
	Coordinates  *string  `json:"coordinates" form:"coordinates" validate:"omitempty,max=100"`
	Address      string   `json:"address" form:"address" validate:"required,max=500"`
	OpeningHours *string  `json:"openingHours" form:"openingHours" validate:"omitempty,max=100"`
	EntryFee     *string  `json:"entryFee" form:"entryFee" validate:"omitempty,max=100"`
	Highlights   []string `json:"highlights" form:"-"`
	TravelTime   *string  `json:"travelTime" form:"travelTime" validate:"omitempty,max=100"`
	IsActive     *bool    `json:"isActive" form:"isActive"`
}

func (f *TouristSpotFields) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
	f.Location = strings.TrimSpace(f.Location)
	f.Address = strings.TrimSpace(f.Address)
	f.Coordinates = trimPtr(f.Coordinates)
	f.OpeningHours = trimPtr(f.OpeningHours)
	f.EntryFee = trimPtr(f.EntryFee)
	f.TravelTime = trimPtr(f.TravelTime)
	highlights := make([]string, 0, len(f.Highlights))
	for _, h := range f.Highlights {
		if h = strings.TrimSpace(h); h != "" {
			highlights = append(highlights, h)
		}
	}
	f.Highlights = highlights
}

// ApplyTo overwrites the descriptive fields; image and active flag are handled by the caller.
func (f *TouristSpotFields) ApplyTo(m *tsModel.TouristSpotModel) {
	m.Name = f.Name
	m.Description = f.Description
	m.Rating = f.Rating
	if m.Rating == 0 {
		m.Rating = tsModel.DefaultRating
	}
	m.Location = f.Location
	m.Coordinates = f.Coordinates
	m.Address = f.Address
	m.OpeningHours = f.OpeningHours
	m.EntryFee = f.EntryFee
	m.Highlights = helper.JSONStrings(f.Highlights)
	m.TravelTime = f.TravelTime
	if f.IsActive != nil {
		m.IsActive = *f.IsActive
	}
}

// ToModel builds a new spot; it is active unless told otherwise.
func (f *TouristSpotFields) ToModel() *tsModel.TouristSpotModel {
	m := &tsModel.TouristSpotModel{IsActive: true, ImageURL: f.ImageURL}
	f.ApplyTo(m)
	return m
}

type TouristSpotDTO struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Rating       float64   `json:"rating"`
	Location     string    `json:"location"`
	Coordinates  *string   `json:"coordinates"`
	Address      string    `json:"address"`
	OpeningHours *string   `json:"openingHours"`
	EntryFee     *string   `json:"entryFee"`
	Highlights   []string  `json:"highlights"`
	TravelTime   *string   `json:"travelTime"`
	IsActive     bool      `json:"isActive"`
	ViewCount    int       `json:"viewCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToTouristSpotDTO(m *tsModel.TouristSpotModel) TouristSpotDTO {
	return TouristSpotDTO{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		Rating:       m.Rating,
		Location:     m.Location,
		Coordinates:  m.Coordinates,
		Address:      m.Address,
		OpeningHours: m.OpeningHours,
		EntryFee:     m.EntryFee,
		Highlights:   helper.StringsFromJSON(m.Highlights),
		TravelTime:   m.TravelTime,
		IsActive:     m.IsActive,
		ViewCount:    m.ViewCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToTouristSpotDTOs(rows []tsModel.TouristSpotModel) []TouristSpotDTO {
	out := make([]TouristSpotDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToTouristSpotDTO(&rows[i]))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

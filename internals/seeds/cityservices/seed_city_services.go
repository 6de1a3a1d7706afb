package cityservices

import (
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	csModel "alisto_backend/internals/features/services/city_services/model"
	helper "alisto_backend/internals/helpers"
)

//go:embed data_city_services.json
var dataCityServices []byte

type serviceSeed struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Fee               float64  `json:"fee"`
	ProcessingTime    string   `json:"processingTime"`
	RequiredDocuments []string `json:"requiredDocuments"`
	OfficeLocation    string   `json:"officeLocation"`
	ContactNumber     *string  `json:"contactNumber"`
	OperatingHours    string   `json:"operatingHours"`
}

type categorySeed struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	IconName    string        `json:"iconName"`
	SortOrder   int           `json:"sortOrder"`
	Services    []serviceSeed `json:"services"`
}

// SeedCityServices inserts the default categories and their services.
// Existing ids are left untouched, so the seed can run on every deploy.
func SeedCityServices(db *gorm.DB) error {
	var seeds []categorySeed
	if err := sonic.Unmarshal(dataCityServices, &seeds); err != nil {
		return fmt.Errorf("decode city services seed: %w", err)
	}

	categories := make([]csModel.ServiceCategoryModel, 0, len(seeds))
	var services []csModel.CityServiceModel
	for _, c := range seeds {
		categories = append(categories, csModel.ServiceCategoryModel{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			IconName:    c.IconName,
			IsActive:    true,
			SortOrder:   c.SortOrder,
		})
		for _, s := range c.Services {
			services = append(services, csModel.CityServiceModel{
				ID:             s.ID,
				CategoryID:     c.ID,
				Name:           s.Name,
				Description:    s.Description,
				Fee:            s.Fee,
				ProcessingTime: s.ProcessingTime,
				RequiredDocs:   helper.JSONStrings(s.RequiredDocuments),
				IsActive:       true,
				OfficeLocation: s.OfficeLocation,
				ContactNumber:  s.ContactNumber,
				OperatingHours: s.OperatingHours,
			})
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&categories)
		if res.Error != nil {
			return fmt.Errorf("seed service categories: %w", res.Error)
		}
		log.Info().Int64("inserted", res.RowsAffected).Msg("service categories seeded")

		res = tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&services)
		if res.Error != nil {
			return fmt.Errorf("seed city services: %w", res.Error)
		}
		log.Info().Int64("inserted", res.RowsAffected).Msg("city services seeded")
		return nil
	})
}

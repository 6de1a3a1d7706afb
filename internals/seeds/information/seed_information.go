package information

import (
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	infoModel "alisto_backend/internals/features/information/model"
)

var (
	//go:embed data_emergency_hotlines.json
	dataHotlines []byte

	//go:embed data_system_configurations.json
	dataConfigurations []byte
)

type hotlineSeed struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	PhoneNumber    string  `json:"phoneNumber"`
	Description    string  `json:"description"`
	IsEmergency    bool    `json:"isEmergency"`
	Department     *string `json:"department"`
	OperatingHours *string `json:"operatingHours"`
	SortOrder      int     `json:"sortOrder"`
}

type configurationSeed struct {
	Key         string                   `json:"key"`
	Value       string                   `json:"value"`
	Description *string                  `json:"description"`
	DataType    infoModel.ConfigDataType `json:"dataType"`
	IsPublic    bool                     `json:"isPublic"`
}

func SeedEmergencyHotlines(db *gorm.DB) error {
	var seeds []hotlineSeed
	if err := sonic.Unmarshal(dataHotlines, &seeds); err != nil {
		return fmt.Errorf("decode hotlines seed: %w", err)
	}
	rows := make([]infoModel.EmergencyHotlineModel, 0, len(seeds))
	for _, s := range seeds {
		rows = append(rows, infoModel.EmergencyHotlineModel{
			ID:             s.ID,
			Title:          s.Title,
			PhoneNumber:    s.PhoneNumber,
			Description:    s.Description,
			IsEmergency:    s.IsEmergency,
			Department:     s.Department,
			OperatingHours: s.OperatingHours,
			IsActive:       true,
			SortOrder:      s.SortOrder,
		})
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("seed emergency hotlines: %w", res.Error)
	}
	log.Info().Int64("inserted", res.RowsAffected).Msg("emergency hotlines seeded")
	return nil
}

// SeedSystemConfigurations never overwrites a key that already exists.
func SeedSystemConfigurations(db *gorm.DB) error {
	var seeds []configurationSeed
	if err := sonic.Unmarshal(dataConfigurations, &seeds); err != nil {
		return fmt.Errorf("decode configurations seed: %w", err)
	}
	rows := make([]infoModel.SystemConfigurationModel, 0, len(seeds))
	for _, s := range seeds {
		if !s.DataType.Valid() {
			return fmt.Errorf("configuration %s: invalid data type %q", s.Key, s.DataType)
		}
		rows = append(rows, infoModel.SystemConfigurationModel{
			Key:         s.Key,
			Value:       s.Value,
			Description: s.Description,
			DataType:    s.DataType,
			IsPublic:    s.IsPublic,
		})
	}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("seed system configurations: %w", res.Error)
	}
	log.Info().Int64("inserted", res.RowsAffected).Msg("system configurations seeded")
	return nil
}

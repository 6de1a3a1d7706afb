package seeds

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"alisto_backend/internals/seeds/cityservices"
	"alisto_backend/internals/seeds/information"
)

// seededSerials are the integer keyed tables whose seeds carry explicit ids.
var seededSerials = []string{"service_categories", "city_services", "emergency_hotlines"}

// RunAllSeeds inserts the reference data. It is idempotent.
func RunAllSeeds(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"city services", cityservices.SeedCityServices},
		{"emergency hotlines", information.SeedEmergencyHotlines},
		{"system configurations", information.SeedSystemConfigurations},
	}
	for _, s := range steps {
		log.Info().Str("seed", s.name).Msg("seeding")
		if err := s.run(db); err != nil {
			return err
		}
	}
	return syncSequences(db)
}

// syncSequences moves postgres serial sequences past the explicitly seeded ids.
func syncSequences(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range seededSerials {
		sql := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 1))", table)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("sync sequence %s: %w", table, err)
		}
	}
	return nil
}

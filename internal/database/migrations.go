package database

import (
	"errors"
	"time"

	"github.com/laterpad/laterpad/internal/notes"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const migrationBackfillUnsortedCategory = "2026-04-18_backfill_unsorted_category"

type migrationRecord struct {
	Name             string `gorm:"column:name;primaryKey;size:190;not null"`
	AppliedAtSeconds int64  `gorm:"column:applied_at_s;not null"`
}

func (migrationRecord) TableName() string {
	return "db_migrations"
}

type migrationDefinition struct {
	name  string
	apply func(*gorm.DB) error
}

func applyMigrations(db *gorm.DB, logger *zap.Logger) error {
	migrations := []migrationDefinition{
		{name: migrationBackfillUnsortedCategory, apply: backfillUnsortedCategory},
	}

	for _, migration := range migrations {
		var record migrationRecord
		err := db.Where("name = ?", migration.name).Take(&record).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := migration.apply(db); err != nil {
			return err
		}
		appliedAt := time.Now().UTC().Unix()
		if err := db.Create(&migrationRecord{Name: migration.name, AppliedAtSeconds: appliedAt}).Error; err != nil {
			return err
		}
		if logger != nil {
			logger.Info("database migration applied", zap.String("migration", migration.name))
		}
	}
	return nil
}

// backfillUnsortedCategory repairs rows written before the category default
// existed so that no stored note carries a blank category.
func backfillUnsortedCategory(db *gorm.DB) error {
	return db.Model(&notes.Note{}).
		Where("TRIM(category) = ''").
		Update("category", notes.DefaultCategory).Error
}

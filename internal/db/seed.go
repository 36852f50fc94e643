package db

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type categorySeed struct {
	Categories []string `yaml:"categories"`
}

// SeedCategories upserts the category reference table from a YAML file.
// Categories are the only externally-seeded data; names already present
// are left untouched.
func SeedCategories(db *gorm.DB, log *logger.Logger, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Category seed file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("read category seed: %w", err)
	}

	var seed categorySeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse category seed: %w", err)
	}
	if len(seed.Categories) == 0 {
		return nil
	}

	rows := make([]types.Category, 0, len(seed.Categories))
	for _, name := range seed.Categories {
		rows = append(rows, types.Category{Name: name})
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	log.Info("Category seed applied", "count", len(rows))
	return nil
}

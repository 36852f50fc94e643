package db

import (
	"os"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

func seedTestDB(t *testing.T) (*gorm.DB, *logger.Logger) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := gdb.AutoMigrate(&types.Category{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return gdb, log
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestSeedCategoriesIsIdempotent(t *testing.T) {
	gdb, log := seedTestDB(t)
	path := writeSeedFile(t, "categories:\n  - Programming\n  - Mathematics\n")

	for i := 0; i < 2; i++ {
		if err := SeedCategories(gdb, log, path); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	var count int64
	if err := gdb.Model(&types.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("category rows = %d, want 2", count)
	}
}

func TestSeedCategoriesKeepsExistingRows(t *testing.T) {
	gdb, log := seedTestDB(t)
	if err := gdb.Create(&types.Category{Name: "Programming"}).Error; err != nil {
		t.Fatalf("pre-insert: %v", err)
	}
	path := writeSeedFile(t, "categories:\n  - Programming\n  - Science\n")

	if err := SeedCategories(gdb, log, path); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var existing types.Category
	if err := gdb.Where("name = ?", "Programming").First(&existing).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if existing.ID != 1 {
		t.Fatalf("existing row id = %d, want original 1", existing.ID)
	}
	var count int64
	if err := gdb.Model(&types.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("category rows = %d, want 2", count)
	}
}

func TestSeedCategoriesMissingFileSkips(t *testing.T) {
	gdb, log := seedTestDB(t)
	if err := SeedCategories(gdb, log, filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("missing file should be skipped, got %v", err)
	}
}

func TestSeedCategoriesBadYAML(t *testing.T) {
	gdb, log := seedTestDB(t)
	path := writeSeedFile(t, "categories: [unterminated\n")
	if err := SeedCategories(gdb, log, path); err == nil {
		t.Fatal("malformed seed file should error")
	}
}

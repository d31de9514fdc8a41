package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chargecompare-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.SavedComparison{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Composite index for the history query (latest N per user)
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_saved_comparisons_user_created ON saved_comparisons(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for saved_comparisons: %v\n", err)
	}

	return nil
}

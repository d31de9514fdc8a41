package repositories

import (
	"gorm.io/gorm"

	"chargecompare-api/models"
)

type ComparisonRepository struct {
	db *gorm.DB
}

func NewComparisonRepository(db *gorm.DB) *ComparisonRepository {
	return &ComparisonRepository{db: db}
}

// Save persists a new saved comparison.
func (r *ComparisonRepository) Save(comparison *models.SavedComparison) error {
	return r.db.Create(comparison).Error
}

// ListByUser returns the user's saved comparisons, newest first.
func (r *ComparisonRepository) ListByUser(userID string, limit int) ([]models.SavedComparison, error) {
	var comparisons []models.SavedComparison
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&comparisons).Error
	return comparisons, err
}

// GetWithUser fetches one comparison scoped to its owner, along with
// the owning user record.
func (r *ComparisonRepository) GetWithUser(id, userID string) (*models.SavedComparison, *models.User, error) {
	var comparison models.SavedComparison
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&comparison).Error; err != nil {
		return nil, nil, err
	}

	var user models.User
	if err := r.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, nil, err
	}

	return &comparison, &user, nil
}

// DeleteByUser removes all comparisons saved by the user.
func (r *ComparisonRepository) DeleteByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.SavedComparison{}).Error
}

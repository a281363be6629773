package repository

import (
	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db}
}

// ReplaceForUser swaps a user's stored result set atomically. A half-written
// result set is worse than a stale one, so delete+insert runs in one tx.
func (r *RecommendationRepository) ReplaceForUser(userID uuid.UUID, recs []model.Recommendation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Recommendation{}).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		return tx.CreateInBatches(recs, 100).Error
	})
}

func (r *RecommendationRepository) FindByUser(userID uuid.UUID) ([]model.Recommendation, error) {
	var recs []model.Recommendation
	err := r.db.Where("user_id = ?", userID).Order("position ASC").Find(&recs).Error
	return recs, err
}

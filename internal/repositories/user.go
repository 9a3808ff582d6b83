package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepmate/interview-coach/internal/models"
)

type UserRepository interface {
	Create(user *models.UserProfile) error
	FindByID(id uuid.UUID) (*models.UserProfile, error)
	Update(id uuid.UUID, fields map[string]interface{}) error
	ApplyCVAnalysis(id uuid.UUID, cvURL string, analysis *models.CVAnalysis) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create implements UserRepository.
func (r *userRepository) Create(user *models.UserProfile) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID implements UserRepository.
func (r *userRepository) FindByID(id uuid.UUID) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// Update implements UserRepository.
func (r *userRepository) Update(id uuid.UUID, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.UserProfile{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplyCVAnalysis implements UserRepository. A failed analysis does not
// reach here; the caller degrades to a profile without personalized
// skills instead.
func (r *userRepository) ApplyCVAnalysis(id uuid.UUID, cvURL string, analysis *models.CVAnalysis) error {
	return r.Update(id, map[string]interface{}{
		"cv_url":     cvURL,
		"skills":     models.StringList(analysis.Skills),
		"education":  analysis.Education,
		"experience": analysis.Experience,
		"projects":   analysis.Projects,
	})
}

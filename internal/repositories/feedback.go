package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepmate/interview-coach/internal/models"
)

type FeedbackRepository interface {
	Create(feedback *models.DetailedFeedback) error
	FindByID(id uuid.UUID) (*models.DetailedFeedback, error)
	FindByInterviewID(interviewID uuid.UUID) (*models.DetailedFeedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create implements FeedbackRepository. Feedback is write-once per
// interview; the unique index on interview_id arbitrates concurrent
// completes, so the loser gets ErrFeedbackExists rather than a driver
// error.
func (r *feedbackRepository) Create(feedback *models.DetailedFeedback) error {
	if err := r.db.Create(feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrFeedbackExists
		}
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// FindByID implements FeedbackRepository.
func (r *feedbackRepository) FindByID(id uuid.UUID) (*models.DetailedFeedback, error) {
	var feedback models.DetailedFeedback
	if err := r.db.Where("id = ?", id).First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}
	return &feedback, nil
}

// FindByInterviewID implements FeedbackRepository.
func (r *feedbackRepository) FindByInterviewID(interviewID uuid.UUID) (*models.DetailedFeedback, error) {
	var feedback models.DetailedFeedback
	if err := r.db.Where("interview_id = ?", interviewID).First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}
	return &feedback, nil
}

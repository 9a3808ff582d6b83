package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"prepmate/interview-coach/internal/models"
)

type InterviewRepository interface {
	Create(interview *models.Interview) error
	FindByID(id uuid.UUID) (*models.Interview, error)
	UpdateStatus(id uuid.UUID, status models.InterviewStatus) error
	SetAnswer(interviewID uuid.UUID, answer *models.InterviewAnswer) error
	FindAnswers(interviewID uuid.UUID) ([]models.InterviewAnswer, error)
	MarkAbandoned(olderThan time.Time) (int64, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *models.Interview) error {
	if err := r.db.Create(interview).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

func (r *interviewRepository) FindByID(id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}
	return &interview, nil
}

func (r *interviewRepository) UpdateStatus(id uuid.UUID, status models.InterviewStatus) error {
	result := r.db.Model(&models.Interview{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAnswer upserts an answer keyed by question id; a resubmission
// overwrites the previous answer. Answers for question ids the interview
// does not own are rejected, never stored as dangling records.
func (r *interviewRepository) SetAnswer(interviewID uuid.UUID, answer *models.InterviewAnswer) error {
	interview, err := r.FindByID(interviewID)
	if err != nil {
		return err
	}
	if !interview.HasQuestion(answer.QuestionID) {
		return ErrQuestionNotFound
	}

	answer.InterviewID = interviewID
	if answer.Timestamp.IsZero() {
		answer.Timestamp = time.Now()
	}

	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "interview_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "time_spent", "timestamp"}),
	}).Create(answer).Error
	if err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}
	return nil
}

func (r *interviewRepository) FindAnswers(interviewID uuid.UUID) ([]models.InterviewAnswer, error) {
	var answers []models.InterviewAnswer
	err := r.db.
		Where("interview_id = ?", interviewID).
		Order("timestamp ASC").
		Find(&answers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find answers: %w", err)
	}
	return answers, nil
}

// MarkAbandoned flips interviews stuck in pending past the given cutoff.
func (r *interviewRepository) MarkAbandoned(olderThan time.Time) (int64, error) {
	result := r.db.Model(&models.Interview{}).
		Where("status = ? AND created_at < ?", models.StatusPending, olderThan).
		Updates(map[string]interface{}{
			"status":     models.StatusAbandoned,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark abandoned interviews: %w", result.Error)
	}
	return result.RowsAffected, nil
}

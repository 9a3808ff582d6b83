package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"prepmate/interview-coach/internal/models"
)

type StatsUpdater interface {
	// RecordScore folds a new overall score into the user's running
	// average and interview count.
	RecordScore(userID uuid.UUID, score int) (*models.UserProfile, error)
}

// statsUpdater holds the database directly: the fold is a compare-and-swap
// on the user row and cannot be expressed through the plain repository
// update. Concurrent completions for one user retry instead of silently
// losing a fold.
type statsUpdater struct {
	db         *gorm.DB
	maxRetries int
	logger     *zap.Logger
}

func NewStatsUpdater(db *gorm.DB, logger *zap.Logger) StatsUpdater {
	return &statsUpdater{
		db:         db,
		maxRetries: 5,
		logger:     logger,
	}
}

// NextAverage returns the running average after folding in one more
// score, rounded to the nearest integer.
func NextAverage(oldAverage, oldCount, newScore int) int {
	return int(math.Round(
		(float64(oldAverage)*float64(oldCount) + float64(newScore)) / float64(oldCount+1),
	))
}

// RecordScore implements StatsUpdater.
func (s *statsUpdater) RecordScore(userID uuid.UUID, score int) (*models.UserProfile, error) {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		var user models.UserProfile
		if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("user not found: %s", userID)
			}
			return nil, fmt.Errorf("failed to read user stats: %w", err)
		}

		now := time.Now()
		newCount := user.TotalInterviews + 1
		newAverage := NextAverage(user.AverageScore, user.TotalInterviews, score)

		// The guard on total_interviews makes the write a compare-and-swap:
		// a stale read affects zero rows and we retry.
		result := s.db.Model(&models.UserProfile{}).
			Where("id = ? AND total_interviews = ?", userID, user.TotalInterviews).
			Updates(map[string]interface{}{
				"total_interviews":    newCount,
				"average_score":       newAverage,
				"last_interview_date": now,
				"updated_at":          now,
			})

		if result.Error != nil {
			return nil, fmt.Errorf("failed to update user stats: %w", result.Error)
		}

		if result.RowsAffected == 1 {
			user.TotalInterviews = newCount
			user.AverageScore = newAverage
			user.LastInterviewDate = &now
			return &user, nil
		}

		s.logger.Debug("stats update lost the race, retrying",
			zap.String("user_id", userID.String()),
			zap.Int("attempt", attempt))
	}

	return nil, fmt.Errorf("failed to update user stats after %d attempts", s.maxRetries)
}

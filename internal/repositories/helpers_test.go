package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"prepmate/interview-coach/internal/config"
	"prepmate/interview-coach/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, NewUserRepository(db).Create(&models.UserProfile{
		ID:        id,
		Name:      "Test User",
		Email:     id.String() + "@example.com",
		Skills:    models.StringList{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}))
	return id
}

func createTestInterview(t *testing.T, db *gorm.DB, userID uuid.UUID, questionIDs ...string) uuid.UUID {
	t.Helper()

	questions := make(models.QuestionList, 0, len(questionIDs))
	for _, qid := range questionIDs {
		questions = append(questions, models.PersonalizedQuestion{
			ID:         qid,
			Question:   "Describe a recent project.",
			Type:       models.QuestionProject,
			Category:   "Projects",
			Difficulty: models.DifficultyMedium,
			TimeLimit:  120,
			BasedOn:    "Projects section",
		})
	}

	interview := &models.Interview{
		ID:         uuid.New(),
		UserID:     userID,
		Questions:  questions,
		Type:       models.TypeMixed,
		Difficulty: models.DifficultyMedium,
		Status:     models.StatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, NewInterviewRepository(db).Create(interview))
	return interview.ID
}

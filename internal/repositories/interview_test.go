package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepmate/interview-coach/internal/models"
)

func TestInterviewRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInterviewRepository(db)
	userID := createTestUser(t, db)
	interviewID := createTestInterview(t, db, userID, "q1", "q2", "q3")

	got, err := repo.FindByID(interviewID)
	require.NoError(t, err)

	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, models.StatusPending, got.Status)
	require.Len(t, got.Questions, 3)
	assert.Equal(t, "q1", got.Questions[0].ID)
	assert.Equal(t, 120, got.Questions[0].TimeLimit)
	assert.Equal(t, models.QuestionProject, got.Questions[0].Type)
}

func TestInterviewFindByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInterviewRepository(db)

	_, err := repo.FindByID(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInterviewUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInterviewRepository(db)
	userID := createTestUser(t, db)
	interviewID := createTestInterview(t, db, userID, "q1")

	require.NoError(t, repo.UpdateStatus(interviewID, models.StatusCompleted))

	got, err := repo.FindByID(interviewID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(uuid.New(), models.StatusCompleted), ErrNotFound)
}

func TestSetAnswerRejectsUnknownQuestion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInterviewRepository(db)
	userID := createTestUser(t, db)
	interviewID := createTestInterview(t, db, userID, "q1")

	err := repo.SetAnswer(interviewID, &models.InterviewAnswer{
		QuestionID: "q99",
		Answer:     "should not be stored",
	})
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	// no dangling record
	answers, err := repo.FindAnswers(interviewID)
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestSetAnswerOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInterviewRepository(db)
	userID := createTestUser(t, db)
	interviewID := createTestInterview(t, db, userID, "q1", "q2")

	require.NoError(t, repo.SetAnswer(interviewID, &models.InterviewAnswer{
		QuestionID: "q1",
		Answer:     "first attempt",
		TimeSpent:  30,
	}))
	require.NoError(t, repo.SetAnswer(interviewID, &models.InterviewAnswer{
		QuestionID: "q1",
		Answer:     "second attempt",
		TimeSpent:  55,
	}))

	answers, err := repo.FindAnswers(interviewID)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, "second attempt", answers[0].Answer)
	assert.Equal(t, 55, answers[0].TimeSpent)
}

func TestFindAnswersOrderedByTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInterviewRepository(db)
	userID := createTestUser(t, db)
	interviewID := createTestInterview(t, db, userID, "q1", "q2", "q3")

	base := time.Now().Add(-time.Hour)
	// submit out of order
	require.NoError(t, repo.SetAnswer(interviewID, &models.InterviewAnswer{
		QuestionID: "q3", Answer: "third", Timestamp: base.Add(3 * time.Minute),
	}))
	require.NoError(t, repo.SetAnswer(interviewID, &models.InterviewAnswer{
		QuestionID: "q1", Answer: "first", Timestamp: base.Add(1 * time.Minute),
	}))
	require.NoError(t, repo.SetAnswer(interviewID, &models.InterviewAnswer{
		QuestionID: "q2", Answer: "second", Timestamp: base.Add(2 * time.Minute),
	}))

	answers, err := repo.FindAnswers(interviewID)
	require.NoError(t, err)
	require.Len(t, answers, 3)
	assert.Equal(t, "q1", answers[0].QuestionID)
	assert.Equal(t, "q2", answers[1].QuestionID)
	assert.Equal(t, "q3", answers[2].QuestionID)
}

func TestMarkAbandoned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInterviewRepository(db)
	userID := createTestUser(t, db)

	staleID := createTestInterview(t, db, userID, "q1")
	freshID := createTestInterview(t, db, userID, "q1")
	completedID := createTestInterview(t, db, userID, "q1")
	require.NoError(t, repo.UpdateStatus(completedID, models.StatusCompleted))

	// age the stale interview and the completed one past the cutoff
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Model(&models.Interview{}).
		Where("id IN ?", []uuid.UUID{staleID, completedID}).
		Update("created_at", old).Error)

	count, err := repo.MarkAbandoned(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stale, err := repo.FindByID(staleID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbandoned, stale.Status)

	fresh, err := repo.FindByID(freshID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, fresh.Status)

	completed, err := repo.FindByID(completedID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
}

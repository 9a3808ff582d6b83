package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"prepmate/interview-coach/internal/config"
	"prepmate/interview-coach/internal/models"
	"prepmate/interview-coach/internal/repositories"
	"prepmate/interview-coach/internal/services"
)

// stubGemini scripts the provider for handler tests.
type stubGemini struct {
	resolveErr error
	response   string
}

func (s *stubGemini) ResolveModel(ctx context.Context) (string, error) {
	if s.resolveErr != nil {
		return "", s.resolveErr
	}
	return "gemini-2.5-flash", nil
}

func (s *stubGemini) GenerateText(ctx context.Context, model, prompt string, temperature float32) (string, error) {
	return s.response, nil
}

type testStack struct {
	app      *fiber.App
	db       *gorm.DB
	userRepo repositories.UserRepository
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	logger := zap.NewNop()
	gemini := &stubGemini{resolveErr: services.ErrNoModelAvailable}

	userRepo := repositories.NewUserRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)

	stats := services.NewStatsUpdater(db, logger)
	questionGen := services.NewQuestionGenerator(interviewRepo, gemini, 10, logger)
	feedbackGen := services.NewFeedbackGenerator(interviewRepo, feedbackRepo, stats, gemini, logger)

	userHandler := NewUserHandler(userRepo)
	interviewHandler := NewInterviewHandler(interviewRepo, userRepo, questionGen, feedbackGen)
	feedbackHandler := NewFeedbackHandler(feedbackRepo)

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Post("/users", userHandler.HandleCreate)
	api.Get("/users/:id", userHandler.HandleGet)
	api.Post("/interviews", interviewHandler.HandleGenerate)
	api.Get("/interviews/:id", interviewHandler.HandleGet)
	api.Post("/interviews/:id/answers", interviewHandler.HandleSubmitAnswer)
	api.Post("/interviews/:id/complete", interviewHandler.HandleComplete)
	api.Get("/feedback/:id", feedbackHandler.HandleGet)

	return &testStack{app: app, db: db, userRepo: userRepo}
}

func (s *testStack) request(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func (s *testStack) createUser(t *testing.T) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, s.userRepo.Create(&models.UserProfile{
		ID:        id,
		Name:      "Test User",
		Email:     id.String() + "@example.com",
		Skills:    models.StringList{"go", "sql"},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}))
	return id
}

package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"prepmate/interview-coach/internal/config"
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

// fakeGemini lets tests script the provider: unavailable models, canned
// responses, or transport failures.
type fakeGemini struct {
	model       string
	resolveErr  error
	response    string
	generateErr error
	prompts     []string
}

func (f *fakeGemini) ResolveModel(ctx context.Context) (string, error) {
	if f.resolveErr != nil {
		return "", f.resolveErr
	}
	return f.model, nil
}

func (f *fakeGemini) GenerateText(ctx context.Context, model, prompt string, temperature float32) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.response, nil
}

func unavailableGemini() *fakeGemini {
	return &fakeGemini{resolveErr: ErrNoModelAvailable}
}

func respondingGemini(response string) *fakeGemini {
	return &fakeGemini{model: "gemini-2.5-flash", response: response}
}

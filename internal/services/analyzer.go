package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prepmate/interview-coach/internal/models"
	"prepmate/interview-coach/internal/repositories"
)

type CVAnalyzer interface {
	// AnalyzeCV derives a structured analysis from extracted CV text and
	// folds it into the user's profile. Provider unavailability and
	// unparseable output both degrade to the heuristic analysis.
	AnalyzeCV(ctx context.Context, userID uuid.UUID, cvURL, cvText string) (*models.CVAnalysis, error)
}

type cvAnalyzer struct {
	userRepo      repositories.UserRepository
	gemini        GeminiService
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewCVAnalyzer(
	userRepo repositories.UserRepository,
	gemini GeminiService,
	logger *zap.Logger,
) CVAnalyzer {
	return &cvAnalyzer{
		userRepo:      userRepo,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

// AnalyzeCV implements CVAnalyzer.
func (a *cvAnalyzer) AnalyzeCV(ctx context.Context, userID uuid.UUID, cvURL, cvText string) (*models.CVAnalysis, error) {
	analysis := a.generateAnalysis(ctx, cvText)

	if err := a.userRepo.ApplyCVAnalysis(userID, cvURL, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

func (a *cvAnalyzer) generateAnalysis(ctx context.Context, cvText string) *models.CVAnalysis {
	model, err := a.gemini.ResolveModel(ctx)
	if err != nil {
		if errors.Is(err, ErrNoModelAvailable) {
			a.logger.Info("no AI model available, using fallback CV analysis")
		} else {
			a.logger.Warn("model selection failed, using fallback CV analysis", zap.Error(err))
		}
		return FallbackCVAnalysis(cvText)
	}

	prompt := a.promptBuilder.BuildCVAnalysisPrompt(cvText)

	response, err := a.gemini.GenerateText(ctx, model, prompt, 0.3)
	if err != nil {
		a.logger.Warn("CV analysis generation failed, using fallback", zap.Error(err))
		return FallbackCVAnalysis(cvText)
	}

	var analysis models.CVAnalysis
	required := []string{"skills", "education", "experience", "projects", "keywords"}
	if err := parseJSONResponse(response, required, &analysis); err != nil {
		a.logger.Warn("failed to parse CV analysis response, using fallback", zap.Error(err))
		return FallbackCVAnalysis(cvText)
	}

	return &analysis
}

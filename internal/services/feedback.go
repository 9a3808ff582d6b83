package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prepmate/interview-coach/internal/models"
	"prepmate/interview-coach/internal/repositories"
)

type FeedbackGenerator interface {
	// CompleteInterview scores a finished interview, persists the
	// feedback record exactly once, folds the overall score into the
	// user's stats and marks the interview completed. Questions without a
	// submitted answer are scored as "No answer provided"; an interview
	// with zero answers still produces a feedback record.
	CompleteInterview(ctx context.Context, interviewID uuid.UUID) (*models.DetailedFeedback, error)
}

type feedbackGenerator struct {
	interviewRepo repositories.InterviewRepository
	feedbackRepo  repositories.FeedbackRepository
	stats         StatsUpdater
	gemini        GeminiService
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewFeedbackGenerator(
	interviewRepo repositories.InterviewRepository,
	feedbackRepo repositories.FeedbackRepository,
	stats StatsUpdater,
	gemini GeminiService,
	logger *zap.Logger,
) FeedbackGenerator {
	return &feedbackGenerator{
		interviewRepo: interviewRepo,
		feedbackRepo:  feedbackRepo,
		stats:         stats,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

// CompleteInterview implements FeedbackGenerator.
func (g *feedbackGenerator) CompleteInterview(ctx context.Context, interviewID uuid.UUID) (*models.DetailedFeedback, error) {
	interview, err := g.interviewRepo.FindByID(interviewID)
	if err != nil {
		return nil, err
	}

	answers, err := g.interviewRepo.FindAnswers(interviewID)
	if err != nil {
		return nil, err
	}

	report := g.generateReport(ctx, interview.Questions, answers)
	clampReport(report)

	feedback := &models.DetailedFeedback{
		ID:                     uuid.New(),
		UserID:                 interview.UserID,
		InterviewID:            interview.ID,
		OverallScore:           report.OverallScore,
		CommunicationScore:     report.CommunicationScore,
		TechnicalScore:         report.TechnicalScore,
		ConfidenceScore:        report.ConfidenceScore,
		Strengths:              report.Strengths,
		Weaknesses:             report.Weaknesses,
		DetailedAnalysis:       report.DetailedAnalysis,
		ImprovementSuggestions: report.ImprovementSuggestions,
		CategoryBreakdown:      report.CategoryBreakdown,
		Answers:                answers,
		CreatedAt:              time.Now(),
	}

	if err := g.feedbackRepo.Create(feedback); err != nil {
		return nil, err
	}

	if _, err := g.stats.RecordScore(interview.UserID, feedback.OverallScore); err != nil {
		// the feedback record exists; surface the stats failure but keep it
		g.logger.Error("failed to fold score into user stats",
			zap.String("user_id", interview.UserID.String()),
			zap.Error(err))
	}

	if err := g.interviewRepo.UpdateStatus(interview.ID, models.StatusCompleted); err != nil {
		g.logger.Error("failed to mark interview completed",
			zap.String("interview_id", interview.ID.String()),
			zap.Error(err))
	}

	return feedback, nil
}

func (g *feedbackGenerator) generateReport(
	ctx context.Context,
	questions []models.PersonalizedQuestion,
	answers []models.InterviewAnswer,
) *models.FeedbackReport {
	model, err := g.gemini.ResolveModel(ctx)
	if err != nil {
		if errors.Is(err, ErrNoModelAvailable) {
			g.logger.Info("no AI model available, using fallback feedback")
		} else {
			g.logger.Warn("model selection failed, using fallback feedback", zap.Error(err))
		}
		return StaticFallbackFeedback()
	}

	prompt := g.promptBuilder.BuildFeedbackPrompt(questions, answers)

	response, err := g.gemini.GenerateText(ctx, model, prompt, 0.3)
	if err != nil {
		g.logger.Warn("feedback generation failed, using fallback feedback", zap.Error(err))
		return StaticFallbackFeedback()
	}

	var report models.FeedbackReport
	required := []string{"overallScore", "communicationScore", "technicalScore", "confidenceScore"}
	if err := parseJSONResponse(response, required, &report); err != nil {
		g.logger.Warn("failed to parse feedback response, using parse-failure fallback", zap.Error(err))
		return ParseFailureFeedback()
	}

	return &report
}

func clampReport(report *models.FeedbackReport) {
	report.OverallScore = clampScore(report.OverallScore)
	report.CommunicationScore = clampScore(report.CommunicationScore)
	report.TechnicalScore = clampScore(report.TechnicalScore)
	report.ConfidenceScore = clampScore(report.ConfidenceScore)

	for category, score := range report.CategoryBreakdown {
		report.CategoryBreakdown[category] = clampScore(score)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prepmate/interview-coach/internal/models"
	"prepmate/interview-coach/internal/repositories"
)

type QuestionGenerator interface {
	// GenerateInterview produces a personalized question set and persists
	// it as a pending interview. The canned pool substitutes whenever no
	// model is available or the model's output is unusable.
	GenerateInterview(
		ctx context.Context,
		userID uuid.UUID,
		analysis *models.CVAnalysis,
		interviewType models.InterviewType,
		difficulty models.Difficulty,
		count int,
	) (*models.Interview, error)
}

type questionGenerator struct {
	interviewRepo repositories.InterviewRepository
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxQuestions  int
	logger        *zap.Logger
}

func NewQuestionGenerator(
	interviewRepo repositories.InterviewRepository,
	gemini GeminiService,
	maxQuestions int,
	logger *zap.Logger,
) QuestionGenerator {
	return &questionGenerator{
		interviewRepo: interviewRepo,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxQuestions:  maxQuestions,
		logger:        logger,
	}
}

type questionSetResponse struct {
	Questions []models.PersonalizedQuestion `json:"questions"`
}

// GenerateInterview implements QuestionGenerator.
func (g *questionGenerator) GenerateInterview(
	ctx context.Context,
	userID uuid.UUID,
	analysis *models.CVAnalysis,
	interviewType models.InterviewType,
	difficulty models.Difficulty,
	count int,
) (*models.Interview, error) {
	if count < 1 {
		count = 1
	}
	if count > g.maxQuestions {
		count = g.maxQuestions
	}

	questions := g.generateQuestions(ctx, analysis, interviewType, difficulty, count)

	interview := &models.Interview{
		ID:         uuid.New(),
		UserID:     userID,
		Questions:  questions,
		Type:       interviewType,
		Difficulty: difficulty,
		Status:     models.StatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := g.interviewRepo.Create(interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (g *questionGenerator) generateQuestions(
	ctx context.Context,
	analysis *models.CVAnalysis,
	interviewType models.InterviewType,
	difficulty models.Difficulty,
	count int,
) models.QuestionList {
	model, err := g.gemini.ResolveModel(ctx)
	if err != nil {
		if errors.Is(err, ErrNoModelAvailable) {
			g.logger.Info("no AI model available, using fallback questions")
		} else {
			g.logger.Warn("model selection failed, using fallback questions", zap.Error(err))
		}
		return FallbackQuestions(analysis, count)
	}

	prompt := g.promptBuilder.BuildQuestionPrompt(analysis, interviewType, difficulty, count)

	response, err := g.gemini.GenerateText(ctx, model, prompt, 0.7)
	if err != nil {
		g.logger.Warn("question generation failed, using fallback questions", zap.Error(err))
		return FallbackQuestions(analysis, count)
	}

	var parsed questionSetResponse
	if err := parseJSONResponse(response, []string{"questions"}, &parsed); err != nil {
		g.logger.Warn("failed to parse question response, using fallback questions", zap.Error(err))
		return FallbackQuestions(analysis, count)
	}

	questions := sanitizeQuestions(parsed.Questions, interviewType, difficulty, count)
	if len(questions) == 0 {
		g.logger.Warn("no usable questions in model response, using fallback questions")
		return FallbackQuestions(analysis, count)
	}
	return questions
}

// sanitizeQuestions repairs a syntactically valid but semantically sloppy
// question list before it is persisted: a malformed question must never
// reach the interview timer.
func sanitizeQuestions(
	raw []models.PersonalizedQuestion,
	interviewType models.InterviewType,
	difficulty models.Difficulty,
	count int,
) models.QuestionList {
	defaultType := models.QuestionBehavioral
	switch interviewType {
	case models.TypeTechnical:
		defaultType = models.QuestionTechnical
	case models.TypeHR:
		defaultType = models.QuestionHR
	}

	seen := make(map[string]bool, len(raw))
	questions := make(models.QuestionList, 0, len(raw))

	for _, q := range raw {
		q.Question = strings.TrimSpace(q.Question)
		if q.Question == "" {
			continue
		}

		if q.ID == "" || seen[q.ID] {
			// the obvious replacement may itself already be taken
			for n := len(questions) + 1; ; n++ {
				candidate := fmt.Sprintf("q%d", n)
				if !seen[candidate] {
					q.ID = candidate
					break
				}
			}
		}
		seen[q.ID] = true

		switch q.Type {
		case models.QuestionTechnical, models.QuestionBehavioral, models.QuestionProject, models.QuestionHR:
		default:
			q.Type = defaultType
		}

		switch q.Difficulty {
		case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		default:
			q.Difficulty = difficulty
		}

		if q.TimeLimit <= 0 {
			q.TimeLimit = 120
		}
		if q.Category == "" {
			q.Category = "General"
		}
		if q.BasedOn == "" {
			q.BasedOn = "CV analysis"
		}

		questions = append(questions, q)
		if len(questions) == count {
			break
		}
	}

	return questions
}

package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"prepmate/interview-coach/internal/models"
	"prepmate/interview-coach/internal/repositories"
	"prepmate/interview-coach/internal/services"
)

type InterviewHandler struct {
	interviewRepo     repositories.InterviewRepository
	userRepo          repositories.UserRepository
	questionGenerator services.QuestionGenerator
	feedbackGenerator services.FeedbackGenerator
}

func NewInterviewHandler(
	interviewRepo repositories.InterviewRepository,
	userRepo repositories.UserRepository,
	questionGenerator services.QuestionGenerator,
	feedbackGenerator services.FeedbackGenerator,
) *InterviewHandler {
	return &InterviewHandler{
		interviewRepo:     interviewRepo,
		userRepo:          userRepo,
		questionGenerator: questionGenerator,
		feedbackGenerator: feedbackGenerator,
	}
}

// HandleGenerate handles POST /interviews.
func (h *InterviewHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateInterviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user_id format",
		})
	}

	interviewType := models.InterviewType(strings.ToLower(req.InterviewType))
	switch interviewType {
	case models.TypeTechnical, models.TypeHR, models.TypeMixed:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "type must be one of: technical, hr, mixed",
		})
	}

	difficulty := models.Difficulty(strings.ToLower(req.Difficulty))
	switch difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "difficulty must be one of: easy, medium, hard",
		})
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch user",
		})
	}

	analysis := &models.CVAnalysis{
		Skills:     user.Skills,
		Education:  user.Education,
		Experience: user.Experience,
		Projects:   user.Projects,
	}

	interview, err := h.questionGenerator.GenerateInterview(
		c.UserContext(), userID, analysis, interviewType, difficulty, req.QuestionCount)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.GenerateInterviewResponse{
			Success: false,
			Message: "Failed to generate questions",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.GenerateInterviewResponse{
		Success:     true,
		InterviewID: interview.ID.String(),
		Questions:   interview.Questions,
	})
}

// HandleGet handles GET /interviews/:id.
func (h *InterviewHandler) HandleGet(c *fiber.Ctx) error {
	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview ID format",
		})
	}

	interview, err := h.interviewRepo.FindByID(interviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Interview not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch interview",
		})
	}

	return c.JSON(interview)
}

// HandleSubmitAnswer handles POST /interviews/:id/answers. At most one
// answer exists per question; resubmitting overwrites.
func (h *InterviewHandler) HandleSubmitAnswer(c *fiber.Ctx) error {
	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview ID format",
		})
	}

	var req models.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.QuestionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "questionId is required",
		})
	}
	if req.TimeSpent < 0 {
		req.TimeSpent = 0
	}

	answer := &models.InterviewAnswer{
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
		TimeSpent:  req.TimeSpent,
	}

	if err := h.interviewRepo.SetAnswer(interviewID, answer); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Interview not found",
			})
		case errors.Is(err, repositories.ErrQuestionNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Question does not belong to this interview",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.SubmitAnswerResponse{
				Success: false,
				Message: "Failed to submit answer",
			})
		}
	}

	return c.JSON(models.SubmitAnswerResponse{Success: true})
}

// HandleComplete handles POST /interviews/:id/complete.
func (h *InterviewHandler) HandleComplete(c *fiber.Ctx) error {
	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview ID format",
		})
	}

	feedback, err := h.feedbackGenerator.CompleteInterview(c.UserContext(), interviewID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Interview not found",
			})
		case errors.Is(err, repositories.ErrFeedbackExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Feedback already generated for this interview",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.CompleteInterviewResponse{
				Success: false,
				Message: "Failed to generate feedback",
			})
		}
	}

	return c.JSON(models.CompleteInterviewResponse{
		Success:    true,
		FeedbackID: feedback.ID.String(),
		Feedback: &models.FeedbackReport{
			OverallScore:           feedback.OverallScore,
			CommunicationScore:     feedback.CommunicationScore,
			TechnicalScore:         feedback.TechnicalScore,
			ConfidenceScore:        feedback.ConfidenceScore,
			Strengths:              feedback.Strengths,
			Weaknesses:             feedback.Weaknesses,
			DetailedAnalysis:       feedback.DetailedAnalysis,
			ImprovementSuggestions: feedback.ImprovementSuggestions,
			CategoryBreakdown:      feedback.CategoryBreakdown,
		},
	})
}

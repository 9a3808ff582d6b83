package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prepmate/interview-coach/internal/models"
)

func TestBuildFeedbackPromptCoercesEmptyAnswer(t *testing.T) {
	pb := NewPromptBuilder()

	questions := []models.PersonalizedQuestion{
		{ID: "q1", Question: "What is a goroutine?", Type: models.QuestionTechnical, Category: "Concurrency", Difficulty: models.DifficultyMedium, TimeLimit: 120},
	}
	answers := []models.InterviewAnswer{
		{QuestionID: "q1", Answer: "", TimeSpent: 20},
	}

	prompt := pb.BuildFeedbackPrompt(questions, answers)
	assert.Contains(t, prompt, "No answer provided")
	assert.Contains(t, prompt, `"timeSpent": 20`)
}

func TestBuildFeedbackPromptKeepsSubmittedAnswer(t *testing.T) {
	pb := NewPromptBuilder()

	questions := []models.PersonalizedQuestion{
		{ID: "q1", Question: "What is a goroutine?", Type: models.QuestionTechnical, Category: "Concurrency", Difficulty: models.DifficultyMedium, TimeLimit: 120},
		{ID: "q2", Question: "What is a channel?", Type: models.QuestionTechnical, Category: "Concurrency", Difficulty: models.DifficultyMedium, TimeLimit: 120},
	}
	answers := []models.InterviewAnswer{
		{QuestionID: "q1", Answer: "A lightweight thread.", TimeSpent: 30},
	}

	prompt := pb.BuildFeedbackPrompt(questions, answers)
	assert.Contains(t, prompt, "A lightweight thread.")
	assert.Contains(t, prompt, "No answer provided")
}

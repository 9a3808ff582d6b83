package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"prepmate/interview-coach/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCVAnalysisPrompt creates the prompt for extracting a structured
// analysis from raw CV text.
func (pb *PromptBuilder) BuildCVAnalysisPrompt(cvText string) string {
	return fmt.Sprintf(`Analyze this CV/Resume and extract the following information in JSON format:

CV Content: %s

Please extract:
1. skills: Array of technical and soft skills
2. education: Education background summary
3. experience: Work experience summary
4. projects: Projects summary
5. keywords: Important keywords for interview questions

Return only valid JSON in this format:
{
  "skills": ["skill1", "skill2"],
  "education": "education summary",
  "experience": "experience summary",
  "projects": "projects summary",
  "keywords": ["keyword1", "keyword2"]
}`, cvText)
}

// BuildQuestionPrompt creates the prompt for generating a personalized
// question set from a CV analysis and interview parameters.
func (pb *PromptBuilder) BuildQuestionPrompt(analysis *models.CVAnalysis, interviewType models.InterviewType, difficulty models.Difficulty, count int) string {
	return fmt.Sprintf(`Generate %d personalized interview questions based on this CV analysis:

Skills: %s
Experience: %s
Projects: %s
Keywords: %s

Interview Type: %s
Difficulty: %s

Generate questions in JSON format:
{
  "questions": [
    {
      "id": "q1",
      "question": "question text",
      "type": "technical|behavioral|project|hr",
      "category": "category name",
      "difficulty": "easy|medium|hard",
      "timeLimit": 60,
      "basedOn": "what CV section this is based on"
    }
  ]
}

Mix different types of questions and make them specific to the candidate's background.`,
		count,
		strings.Join(analysis.Skills, ", "),
		analysis.Experience,
		analysis.Projects,
		strings.Join(analysis.Keywords, ", "),
		interviewType,
		difficulty,
	)
}

// questionAnswerPair is one row of the performance data embedded in the
// feedback prompt.
type questionAnswerPair struct {
	Question   string `json:"question"`
	Type       string `json:"type"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	TimeLimit  int    `json:"timeLimit"`
	Answer     string `json:"answer"`
	TimeSpent  int    `json:"timeSpent"`
}

// BuildFeedbackPrompt creates the prompt for scoring a completed
// interview. Questions with no submitted answer, or whose submitted
// answer text is empty, carry the "No answer provided" sentinel.
func (pb *PromptBuilder) BuildFeedbackPrompt(questions []models.PersonalizedQuestion, answers []models.InterviewAnswer) string {
	byQuestion := make(map[string]models.InterviewAnswer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	pairs := make([]questionAnswerPair, 0, len(questions))
	for _, q := range questions {
		pair := questionAnswerPair{
			Question:   q.Question,
			Type:       string(q.Type),
			Category:   q.Category,
			Difficulty: string(q.Difficulty),
			TimeLimit:  q.TimeLimit,
			Answer:     "No answer provided",
			TimeSpent:  0,
		}
		if a, ok := byQuestion[q.ID]; ok {
			if a.Answer != "" {
				pair.Answer = a.Answer
			}
			pair.TimeSpent = a.TimeSpent
		}
		pairs = append(pairs, pair)
	}

	data, _ := json.MarshalIndent(pairs, "", "  ")

	return fmt.Sprintf(`Analyze this interview performance and provide detailed feedback:

Interview Data: %s

Please provide analysis in JSON format:
{
  "overallScore": 85,
  "communicationScore": 80,
  "technicalScore": 90,
  "confidenceScore": 75,
  "strengths": ["strength1", "strength2"],
  "weaknesses": ["weakness1", "weakness2"],
  "detailedAnalysis": "comprehensive analysis text",
  "improvementSuggestions": ["suggestion1", "suggestion2"],
  "categoryBreakdown": {
    "technical": 85,
    "behavioral": 80,
    "communication": 75
  }
}

Consider:
- Answer quality and relevance
- Time management (compared to time limits)
- Technical accuracy
- Communication clarity
- Confidence indicators`, string(data))
}

package services

import (
	"regexp"
	"sort"
	"strings"

	"prepmate/interview-coach/internal/models"
)

// commonSkills is the vocabulary used for heuristic skill extraction when
// no model is available.
var commonSkills = []string{
	"JavaScript", "Python", "Java", "React", "Node.js", "HTML", "CSS",
	"SQL", "MongoDB", "Express", "Angular", "Vue", "TypeScript", "PHP",
	"C++", "C#", "Ruby", "Go", "Rust", "Swift", "Kotlin", "Flutter",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Git", "Linux",
}

var wordPattern = regexp.MustCompile(`\b\w{3,}\b`)

// ExtractSkillsFromText matches the skill vocabulary against raw CV text,
// case-insensitively, capped at 10 hits.
func ExtractSkillsFromText(text string) []string {
	lower := strings.ToLower(text)

	var skills []string
	for _, skill := range commonSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
			if len(skills) == 10 {
				break
			}
		}
	}
	return skills
}

// ExtractKeywordsFromText ranks words of at least three characters by
// frequency and returns the top 20.
func ExtractKeywordsFromText(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	frequency := make(map[string]int)
	for _, word := range words {
		frequency[word]++
	}

	keywords := make([]string, 0, len(frequency))
	for word := range frequency {
		keywords = append(keywords, word)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if frequency[keywords[i]] != frequency[keywords[j]] {
			return frequency[keywords[i]] > frequency[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > 20 {
		keywords = keywords[:20]
	}
	return keywords
}

// FallbackCVAnalysis is the heuristic substitute used when the model is
// unreachable or its analysis cannot be parsed.
func FallbackCVAnalysis(cvText string) *models.CVAnalysis {
	return &models.CVAnalysis{
		Skills:     ExtractSkillsFromText(cvText),
		Education:  "Education information extracted from CV",
		Experience: "Experience information extracted from CV",
		Projects:   "Projects information extracted from CV",
		Keywords:   ExtractKeywordsFromText(cvText),
	}
}

// FallbackQuestions returns the canned ten-question pool truncated to
// count, with the candidate's leading skills interpolated. Order is
// fixed.
func FallbackQuestions(analysis *models.CVAnalysis, count int) []models.PersonalizedQuestion {
	skills := analysis.Skills
	if len(skills) == 0 {
		skills = []string{"programming", "problem solving", "teamwork"}
	}
	secondSkill := "a technical concept"
	if len(skills) > 1 {
		secondSkill = skills[1]
	}

	pool := []models.PersonalizedQuestion{
		{
			ID:         "q1",
			Question:   "Tell me about yourself and your background.",
			Type:       models.QuestionBehavioral,
			Category:   "General",
			Difficulty: models.DifficultyEasy,
			TimeLimit:  120,
			BasedOn:    "General background",
		},
		{
			ID:         "q2",
			Question:   "I see you have experience with " + skills[0] + ". Can you explain a project where you used this skill?",
			Type:       models.QuestionTechnical,
			Category:   "Technical Skills",
			Difficulty: models.DifficultyMedium,
			TimeLimit:  180,
			BasedOn:    "Skills section",
		},
		{
			ID:         "q3",
			Question:   "What are your strengths and how do they relate to this role?",
			Type:       models.QuestionBehavioral,
			Category:   "Self Assessment",
			Difficulty: models.DifficultyEasy,
			TimeLimit:  90,
			BasedOn:    "General assessment",
		},
		{
			ID:         "q4",
			Question:   "Describe a challenging problem you solved and how you approached it.",
			Type:       models.QuestionBehavioral,
			Category:   "Problem Solving",
			Difficulty: models.DifficultyMedium,
			TimeLimit:  150,
			BasedOn:    "Experience section",
		},
		{
			ID:         "q5",
			Question:   "How would you explain " + secondSkill + " to someone without a technical background?",
			Type:       models.QuestionTechnical,
			Category:   "Communication",
			Difficulty: models.DifficultyMedium,
			TimeLimit:  120,
			BasedOn:    "Skills section",
		},
		{
			ID:         "q6",
			Question:   "Why are you interested in this role and what motivates you?",
			Type:       models.QuestionHR,
			Category:   "Motivation",
			Difficulty: models.DifficultyEasy,
			TimeLimit:  90,
			BasedOn:    "General interest",
		},
		{
			ID:         "q7",
			Question:   "Describe a time when you had to work in a team. What was your role and contribution?",
			Type:       models.QuestionBehavioral,
			Category:   "Teamwork",
			Difficulty: models.DifficultyMedium,
			TimeLimit:  150,
			BasedOn:    "Experience section",
		},
		{
			ID:         "q8",
			Question:   "What are the latest trends or developments in " + skills[0] + " that interest you?",
			Type:       models.QuestionTechnical,
			Category:   "Industry Knowledge",
			Difficulty: models.DifficultyHard,
			TimeLimit:  120,
			BasedOn:    "Skills section",
		},
		{
			ID:         "q9",
			Question:   "How do you handle stress and tight deadlines?",
			Type:       models.QuestionBehavioral,
			Category:   "Stress Management",
			Difficulty: models.DifficultyMedium,
			TimeLimit:  90,
			BasedOn:    "General assessment",
		},
		{
			ID:         "q10",
			Question:   "Where do you see yourself in 5 years and how does this role fit into your career goals?",
			Type:       models.QuestionHR,
			Category:   "Career Goals",
			Difficulty: models.DifficultyEasy,
			TimeLimit:  120,
			BasedOn:    "Career planning",
		},
	}

	if count < len(pool) {
		return pool[:count]
	}
	return pool
}

// StaticFallbackFeedback is the scoring substitute used when no model is
// available.
func StaticFallbackFeedback() *models.FeedbackReport {
	return &models.FeedbackReport{
		OverallScore:       75,
		CommunicationScore: 75,
		TechnicalScore:     75,
		ConfidenceScore:    75,
		Strengths:          []string{"Completed all questions", "Good effort shown"},
		Weaknesses:         []string{"Could provide more detailed answers", "Time management could be improved"},
		DetailedAnalysis:   "Overall good performance. The interview was completed successfully with room for improvement in providing more detailed responses and better time management.",
		ImprovementSuggestions: []string{
			"Practice explaining concepts in more detail",
			"Work on time management skills",
			"Prepare specific examples for behavioral questions",
		},
		CategoryBreakdown: map[string]int{"technical": 75, "behavioral": 75, "communication": 75},
	}
}

// ParseFailureFeedback is used when the model replied but its output
// could not be parsed as the expected shape.
func ParseFailureFeedback() *models.FeedbackReport {
	return &models.FeedbackReport{
		OverallScore:       80,
		CommunicationScore: 78,
		TechnicalScore:     82,
		ConfidenceScore:    76,
		Strengths:          []string{"Good communication", "Completed all questions", "Showed enthusiasm"},
		Weaknesses:         []string{"Could provide more detailed examples", "Time management could be improved"},
		DetailedAnalysis:   "Overall solid performance. The candidate demonstrated good understanding of the topics and communicated clearly. There's room for improvement in providing more specific examples and managing time more effectively.",
		ImprovementSuggestions: []string{
			"Practice explaining concepts with specific examples",
			"Work on time management during responses",
			"Prepare STAR method examples for behavioral questions",
		},
		CategoryBreakdown: map[string]int{"technical": 82, "behavioral": 78, "communication": 76},
	}
}

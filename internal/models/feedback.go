package models

import (
	"time"

	"github.com/google/uuid"
)

// DetailedFeedback is created exactly once per completed interview and is
// immutable thereafter. All scores are in [0,100].
type DetailedFeedback struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID                 uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	InterviewID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"interview_id"`
	OverallScore           int        `gorm:"not null" json:"overallScore"`
	CommunicationScore     int        `gorm:"not null" json:"communicationScore"`
	TechnicalScore         int        `gorm:"not null" json:"technicalScore"`
	ConfidenceScore        int        `gorm:"not null" json:"confidenceScore"`
	Strengths              StringList `gorm:"type:text" json:"strengths"`
	Weaknesses             StringList `gorm:"type:text" json:"weaknesses"`
	DetailedAnalysis       string     `gorm:"type:text" json:"detailedAnalysis"`
	ImprovementSuggestions StringList `gorm:"type:text" json:"improvementSuggestions"`
	CategoryBreakdown      ScoreMap   `gorm:"type:text" json:"categoryBreakdown,omitempty"`
	Answers                AnswerList `gorm:"type:text" json:"answers"`
	CreatedAt              time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (DetailedFeedback) TableName() string {
	return "feedback"
}

// FeedbackReport is the score payload produced by the Feedback Generator
// before it is persisted, matching the JSON shape requested from the
// model.
type FeedbackReport struct {
	OverallScore           int            `json:"overallScore"`
	CommunicationScore     int            `json:"communicationScore"`
	TechnicalScore         int            `json:"technicalScore"`
	ConfidenceScore        int            `json:"confidenceScore"`
	Strengths              []string       `json:"strengths"`
	Weaknesses             []string       `json:"weaknesses"`
	DetailedAnalysis       string         `json:"detailedAnalysis"`
	ImprovementSuggestions []string       `json:"improvementSuggestions"`
	CategoryBreakdown      map[string]int `json:"categoryBreakdown,omitempty"`
}

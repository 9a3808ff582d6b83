package models

import (
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	StatusPending   InterviewStatus = "pending"
	StatusCompleted InterviewStatus = "completed"
	StatusAbandoned InterviewStatus = "abandoned"
)

type InterviewType string

const (
	TypeTechnical InterviewType = "technical"
	TypeHR        InterviewType = "hr"
	TypeMixed     InterviewType = "mixed"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type QuestionType string

const (
	QuestionTechnical  QuestionType = "technical"
	QuestionBehavioral QuestionType = "behavioral"
	QuestionProject    QuestionType = "project"
	QuestionHR         QuestionType = "hr"
)

// PersonalizedQuestion is immutable once generated and owned by exactly
// one Interview. TimeLimit is in seconds.
type PersonalizedQuestion struct {
	ID         string       `json:"id"`
	Question   string       `json:"question"`
	Type       QuestionType `json:"type"`
	Category   string       `json:"category"`
	Difficulty Difficulty   `json:"difficulty"`
	TimeLimit  int          `json:"timeLimit"`
	BasedOn    string       `json:"basedOn"`
}

type Interview struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Questions  QuestionList    `gorm:"type:text;not null" json:"questions"`
	Type       InterviewType   `gorm:"type:text;not null" json:"type"`
	Difficulty Difficulty      `gorm:"type:text;not null" json:"difficulty"`
	Status     InterviewStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`
	CreatedAt  time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	User UserProfile `gorm:"foreignKey:UserID" json:"-"`
}

func (Interview) TableName() string {
	return "interviews"
}

// HasQuestion reports whether the interview owns a question with the
// given id.
func (i *Interview) HasQuestion(questionID string) bool {
	for _, q := range i.Questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}

// InterviewAnswer is keyed by question id within its interview; a
// resubmission overwrites the previous answer.
type InterviewAnswer struct {
	ID          uint      `gorm:"primary_key" json:"-"`
	InterviewID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_answer_question" json:"-"`
	QuestionID  string    `gorm:"type:text;not null;uniqueIndex:idx_answer_question" json:"questionId"`
	Answer      string    `gorm:"type:text;not null" json:"answer"`
	TimeSpent   int       `gorm:"not null;default:0" json:"timeSpent"`
	Timestamp   time.Time `gorm:"not null" json:"timestamp"`
}

func (InterviewAnswer) TableName() string {
	return "interview_answers"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type UserProfile struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name              string     `gorm:"type:text;not null" json:"name"`
	Email             string     `gorm:"type:text;uniqueIndex;not null" json:"email"`
	ContactNumber     string     `gorm:"type:text" json:"contact_number"`
	CollegeName       string     `gorm:"type:text" json:"college_name"`
	Degree            string     `gorm:"type:text" json:"degree"`
	Branch            string     `gorm:"type:text" json:"branch"`
	YearOfStudy       string     `gorm:"type:text" json:"year_of_study"`
	CVURL             string     `gorm:"type:text" json:"cv_url,omitempty"`
	Skills            StringList `gorm:"type:text" json:"skills"`
	Education         string     `gorm:"type:text" json:"education"`
	Experience        string     `gorm:"type:text" json:"experience"`
	Projects          string     `gorm:"type:text" json:"projects"`
	TotalInterviews   int        `gorm:"not null;default:0" json:"total_interviews"`
	AverageScore      int        `gorm:"not null;default:0" json:"average_score"`
	LastInterviewDate *time.Time `json:"last_interview_date,omitempty"`
	CreatedAt         time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "users"
}

// CVAnalysis is derived from an uploaded CV and folded into the
// UserProfile. It is never persisted as its own entity.
type CVAnalysis struct {
	Skills     []string `json:"skills"`
	Education  string   `json:"education"`
	Experience string   `json:"experience"`
	Projects   string   `json:"projects"`
	Keywords   []string `json:"keywords"`
}

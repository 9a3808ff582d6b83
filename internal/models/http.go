package models

type CreateUserRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	CollegeName   string `json:"college_name"`
	Degree        string `json:"degree"`
	Branch        string `json:"branch"`
	YearOfStudy   string `json:"year_of_study"`
}

type CVUploadResponse struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	CVURL    string      `json:"cv_url,omitempty"`
	Analysis *CVAnalysis `json:"analysis,omitempty"`
}

type GenerateInterviewRequest struct {
	UserID        string `json:"user_id"`
	InterviewType string `json:"type"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"question_count"`
}

type GenerateInterviewResponse struct {
	Success     bool                   `json:"success"`
	Message     string                 `json:"message,omitempty"`
	InterviewID string                 `json:"interview_id,omitempty"`
	Questions   []PersonalizedQuestion `json:"questions,omitempty"`
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	TimeSpent  int    `json:"timeSpent"`
}

type SubmitAnswerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type CompleteInterviewResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	FeedbackID string          `json:"feedback_id,omitempty"`
	Feedback   *FeedbackReport `json:"feedback,omitempty"`
}

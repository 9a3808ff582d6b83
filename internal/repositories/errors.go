package repositories

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	// ErrQuestionNotFound is returned when an answer references a
	// question id the owning interview does not contain.
	ErrQuestionNotFound = errors.New("question not found in interview")

	// ErrFeedbackExists guards the write-once rule for feedback records.
	ErrFeedbackExists = errors.New("feedback already exists for interview")
)

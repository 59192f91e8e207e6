package grading

import "fmt"

// Answer is one submitted answer, positionally aligned with its quiz item.
type Answer struct {
	Answer string `json:"answer"`
}

// IncorrectItem describes one missed question in a grade result.
type IncorrectItem struct {
	Question          string `json:"question"`
	YourAnswer        string `json:"yourAnswer"`
	YourAnswerMeaning string `json:"yourAnswerMeaning"`
	CorrectAnswer     string `json:"correctAnswer"`
	CorrectMeaning    string `json:"correctMeaning"`
	Feedback          string `json:"feedback"`
}

// Result is the structured scoring and feedback for a submitted quiz.
type Result struct {
	ScorePercentage int             `json:"scorePercentage"`
	Incorrect       []IncorrectItem `json:"incorrect"`
	OverallFeedback string          `json:"overallFeedback"`
}

// failureFeedback is the fixed message carried by the failure sentinel.
const failureFeedback = "Grading could not be completed. Please try again."

// FailureResult returns the fixed sentinel substituted when the service
// response cannot be decoded: score 0, no per-item detail, fixed message.
func FailureResult() *Result {
	return &Result{
		ScorePercentage: 0,
		Incorrect:       []IncorrectItem{},
		OverallFeedback: failureFeedback,
	}
}

// IsFailure reports whether r is the decode-failure sentinel.
func (r *Result) IsFailure() bool {
	return r != nil && r.OverallFeedback == failureFeedback
}

// ErrDecode reports an unparsable or wrong-shaped grading response.
// Raw carries the offending payload for inspection.
type ErrDecode struct {
	Raw []byte
	Err error
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("decode grade result: %v", e.Err)
}

func (e *ErrDecode) Unwrap() error { return e.Err }

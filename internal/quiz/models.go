package quiz

// Choice is one selectable option of a question. Label is a single
// uppercase letter A-Z; Text is never empty.
type Choice struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question holds one prompt with its choices and the correct label.
// Labels are unique and form a prefix of the alphabet starting at A.
type Question struct {
	Number  int      `json:"number"` // as written in the document
	Prompt  string   `json:"prompt"`
	Choices []Choice `json:"choices"`
	Correct string   `json:"correct"`
}

// Quiz is an ordered set of questions extracted from one document.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Submission maps a 0-based question index to the chosen label.
// Absent index means unanswered.
type Submission map[int]string

// QuestionResult is the graded outcome for a single question.
type QuestionResult struct {
	Chosen    string `json:"chosen"` // "" if unanswered
	Correct   string `json:"correct"`
	IsCorrect bool   `json:"is_correct"`
}

// Result is the graded outcome for a whole submission.
type Result struct {
	Total       int              `json:"total"`
	Correct     int              `json:"correct"`
	PerQuestion []QuestionResult `json:"per_question"`
}

// Percent returns the score as 0-100. A quiz has at least one question,
// but guard anyway.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

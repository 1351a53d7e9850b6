package quiz

// Grade compares a submission against the quiz answer key. A missing
// or unrecognized label counts as incorrect; labels are compared
// exactly (the HTTP layer folds them to uppercase before grading).
func Grade(q Quiz, sub Submission) Result {
	res := Result{
		Total:       len(q.Questions),
		PerQuestion: make([]QuestionResult, 0, len(q.Questions)),
	}
	for i, question := range q.Questions {
		chosen := sub[i]
		qr := QuestionResult{
			Chosen:    chosen,
			Correct:   question.Correct,
			IsCorrect: chosen != "" && chosen == question.Correct,
		}
		if qr.IsCorrect {
			res.Correct++
		}
		res.PerQuestion = append(res.PerQuestion, qr)
	}
	return res
}

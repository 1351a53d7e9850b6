package quiz

import (
	"reflect"
	"testing"
)

func twoQuestionQuiz() Quiz {
	return Quiz{Questions: []Question{
		{Number: 1, Prompt: "One?", Choices: []Choice{{"A", "a"}, {"B", "b"}, {"C", "c"}}, Correct: "B"},
		{Number: 2, Prompt: "Two?", Choices: []Choice{{"A", "a"}, {"B", "b"}, {"C", "c"}}, Correct: "C"},
	}}
}

func TestGradeMixedSubmission(t *testing.T) {
	res := Grade(twoQuestionQuiz(), Submission{0: "B", 1: "A"})
	if res.Total != 2 || res.Correct != 1 {
		t.Fatalf("total/correct = %d/%d, want 2/1", res.Total, res.Correct)
	}
	want := []QuestionResult{
		{Chosen: "B", Correct: "B", IsCorrect: true},
		{Chosen: "A", Correct: "C", IsCorrect: false},
	}
	if !reflect.DeepEqual(res.PerQuestion, want) {
		t.Errorf("per_question = %+v, want %+v", res.PerQuestion, want)
	}
}

func TestGradeEmptySubmission(t *testing.T) {
	res := Grade(twoQuestionQuiz(), Submission{})
	if res.Correct != 0 {
		t.Errorf("correct = %d, want 0", res.Correct)
	}
	for i, qr := range res.PerQuestion {
		if qr.IsCorrect || qr.Chosen != "" {
			t.Errorf("question %d: %+v, want unanswered and incorrect", i, qr)
		}
	}
}

func TestGradeFullCorrect(t *testing.T) {
	q := twoQuestionQuiz()
	sub := Submission{}
	for i, question := range q.Questions {
		sub[i] = question.Correct
	}
	res := Grade(q, sub)
	if res.Correct != res.Total {
		t.Errorf("correct = %d, want %d", res.Correct, res.Total)
	}
	if res.Percent() != 100 {
		t.Errorf("percent = %v, want 100", res.Percent())
	}
}

func TestGradeUnknownLabelIncorrect(t *testing.T) {
	res := Grade(twoQuestionQuiz(), Submission{0: "Z", 1: "C"})
	if res.Correct != 1 {
		t.Errorf("correct = %d, want 1", res.Correct)
	}
	if res.PerQuestion[0].IsCorrect {
		t.Error("unknown label graded correct")
	}
}

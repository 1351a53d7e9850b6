package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/docquiz/docquiz/internal/quiz"
)

func sampleQuiz() quiz.Quiz {
	return quiz.Quiz{Questions: []quiz.Question{
		{Number: 1, Prompt: "What is 2+2?", Choices: []quiz.Choice{{Label: "A", Text: "3"}, {Label: "B", Text: "4"}, {Label: "C", Text: "5"}}, Correct: "B"},
		{Number: 2, Prompt: "Capital of France?", Choices: []quiz.Choice{{Label: "A", Text: "Paris"}, {Label: "B", Text: "Berlin"}}, Correct: "A"},
	}}
}

func TestQuizFormRadioGroups(t *testing.T) {
	var buf bytes.Buffer
	if err := New().QuizForm(&buf, NewQuizView("doc-123", sampleQuiz())); err != nil {
		t.Fatalf("QuizForm: %v", err)
	}
	html := buf.String()

	if got := strings.Count(html, `name="q0"`); got != 3 {
		t.Errorf("q0 radios = %d, want 3", got)
	}
	if got := strings.Count(html, `name="q1"`); got != 2 {
		t.Errorf("q1 radios = %d, want 2", got)
	}
	if !strings.Contains(html, `<input type="hidden" name="doc_id" value="doc-123">`) {
		t.Error("hidden doc_id field missing")
	}
	if !strings.Contains(html, `action="/grade"`) {
		t.Error("form must post to /grade")
	}
	// choice order = parse order
	a := strings.Index(html, "A) 3")
	b := strings.Index(html, "B) 4")
	c := strings.Index(html, "C) 5")
	if a < 0 || b < 0 || c < 0 || !(a < b && b < c) {
		t.Errorf("choices out of order: %d %d %d", a, b, c)
	}
}

func TestQuizFormDeterministic(t *testing.T) {
	var one, two bytes.Buffer
	r := New()
	v := NewQuizView("d", sampleQuiz())
	if err := r.QuizForm(&one, v); err != nil {
		t.Fatal(err)
	}
	if err := r.QuizForm(&two, v); err != nil {
		t.Fatal(err)
	}
	if one.String() != two.String() {
		t.Error("rendering is not deterministic")
	}
}

func TestResultPage(t *testing.T) {
	q := sampleQuiz()
	res := quiz.Grade(q, quiz.Submission{0: "B", 1: "B"})

	var buf bytes.Buffer
	if err := New().ResultPage(&buf, NewResultView("doc-123", q, res)); err != nil {
		t.Fatalf("ResultPage: %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, "Score: 1 / 2 (50.00%)") {
		t.Errorf("score line missing:\n%s", html)
	}
	if !strings.Contains(html, "Your answer: B") || !strings.Contains(html, "Correct answer: A") {
		t.Error("incorrect-answer review missing")
	}
}

func TestResultPageUnanswered(t *testing.T) {
	q := sampleQuiz()
	res := quiz.Grade(q, quiz.Submission{})

	var buf bytes.Buffer
	if err := New().ResultPage(&buf, NewResultView("d", q, res)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "no answer") {
		t.Error("unanswered questions should read 'no answer'")
	}
}

func TestLandingAndErrorPages(t *testing.T) {
	r := New()

	var buf bytes.Buffer
	if err := r.Landing(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `action="/quiz"`) || !strings.Contains(buf.String(), `name="doc_id"`) {
		t.Error("landing form missing doc_id input posting to /quiz")
	}

	buf.Reset()
	err := r.ErrorPage(&buf, ErrorView{
		Kind: "Malformed Quiz", Message: "bad", Paragraph: 3, Excerpt: "Answer: B", HasIndex: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "paragraph 3") {
		t.Error("error page should show the offending paragraph index")
	}
}

func TestPromptEscaped(t *testing.T) {
	q := quiz.Quiz{Questions: []quiz.Question{{
		Number: 1, Prompt: "<script>alert(1)</script>",
		Choices: []quiz.Choice{{Label: "A", Text: "a"}, {Label: "B", Text: "b"}}, Correct: "A",
	}}}
	var buf bytes.Buffer
	if err := New().QuizForm(&buf, NewQuizView("d", q)); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)</script>") {
		t.Error("prompt not escaped")
	}
}

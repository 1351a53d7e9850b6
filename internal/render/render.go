// Package render emits the HTML pages of the quiz front-end.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/docquiz/docquiz/internal/quiz"
)

type Renderer struct {
	t *template.Template
}

func New() *Renderer {
	return &Renderer{t: template.Must(template.New("pages").Parse(pages))}
}

// QuizView is the template model for the quiz form. Question order and
// choice order follow parse order, so rendering is deterministic.
type QuizView struct {
	DocID     string
	Questions []QuestionView
}

type QuestionView struct {
	Name    string // radio group name: q0, q1, ...
	Number  int    // as written in the document
	Prompt  string
	Choices []quiz.Choice
}

func NewQuizView(docID string, q quiz.Quiz) QuizView {
	v := QuizView{DocID: docID, Questions: make([]QuestionView, 0, len(q.Questions))}
	for i, question := range q.Questions {
		v.Questions = append(v.Questions, QuestionView{
			Name:    fmt.Sprintf("q%d", i),
			Number:  question.Number,
			Prompt:  question.Prompt,
			Choices: question.Choices,
		})
	}
	return v
}

// ResultView is the template model for the score page, including the
// per-question review of wrong answers.
type ResultView struct {
	DocID   string
	Total   int
	Correct int
	Percent string
	Rows    []ResultRow
}

type ResultRow struct {
	Number    int
	Prompt    string
	Chosen    string // "" if unanswered
	Correct   string
	IsCorrect bool
	Choices   []quiz.Choice
}

func NewResultView(docID string, q quiz.Quiz, res quiz.Result) ResultView {
	v := ResultView{
		DocID:   docID,
		Total:   res.Total,
		Correct: res.Correct,
		Percent: fmt.Sprintf("%.2f", res.Percent()),
		Rows:    make([]ResultRow, 0, len(res.PerQuestion)),
	}
	for i, qr := range res.PerQuestion {
		v.Rows = append(v.Rows, ResultRow{
			Number:    q.Questions[i].Number,
			Prompt:    q.Questions[i].Prompt,
			Chosen:    qr.Chosen,
			Correct:   qr.Correct,
			IsCorrect: qr.IsCorrect,
			Choices:   q.Questions[i].Choices,
		})
	}
	return v
}

// ErrorView is the template model for the error page. Paragraph and
// Excerpt are set for malformed-quiz errors only.
type ErrorView struct {
	Kind      string
	Message   string
	Paragraph int
	Excerpt   string
	HasIndex  bool
}

func (r *Renderer) Landing(w io.Writer) error {
	return r.t.ExecuteTemplate(w, "landing", nil)
}

func (r *Renderer) QuizForm(w io.Writer, v QuizView) error {
	return r.t.ExecuteTemplate(w, "quizform", v)
}

func (r *Renderer) ResultPage(w io.Writer, v ResultView) error {
	return r.t.ExecuteTemplate(w, "result", v)
}

func (r *Renderer) ErrorPage(w io.Writer, v ErrorView) error {
	return r.t.ExecuteTemplate(w, "error", v)
}

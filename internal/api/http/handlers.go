// Package http is the web front-end: a landing form, the quiz form,
// and the grading page. Nothing is stored between requests; grading
// re-fetches and re-parses the document.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/docquiz/docquiz/internal/docs"
	"github.com/docquiz/docquiz/internal/quiz"
	"github.com/docquiz/docquiz/internal/render"
)

// GET /
func LandingHandler(rend *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = rend.Landing(w)
	}
}

// POST /quiz
func QuizFormHandler(p docs.Provider, rend *render.Renderer, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docID := strings.TrimSpace(r.PostFormValue("doc_id"))
		if docID == "" {
			writeBadRequest(w, rend, "doc_id is required")
			return
		}
		q, paragraphs, err := fetchQuiz(r, p, docID)
		if err != nil {
			writeError(w, rend, log, err, paragraphs)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = rend.QuizForm(w, render.NewQuizView(docID, q))
	}
}

// POST /grade
func GradeHandler(p docs.Provider, rend *render.Renderer, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docID := strings.TrimSpace(r.PostFormValue("doc_id"))
		if docID == "" {
			writeBadRequest(w, rend, "doc_id is required")
			return
		}
		q, paragraphs, err := fetchQuiz(r, p, docID)
		if err != nil {
			writeError(w, rend, log, err, paragraphs)
			return
		}
		sub := quiz.Submission{}
		for i := range q.Questions {
			if v := strings.TrimSpace(r.PostFormValue(fmt.Sprintf("q%d", i))); v != "" {
				sub[i] = strings.ToUpper(v)
			}
		}
		res := quiz.Grade(q, sub)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = rend.ResultPage(w, render.NewResultView(docID, q, res))
	}
}

func fetchQuiz(r *http.Request, p docs.Provider, docID string) (quiz.Quiz, []string, error) {
	paragraphs, err := p.Paragraphs(r.Context(), docID)
	if err != nil {
		return quiz.Quiz{}, nil, err
	}
	q, err := quiz.Parse(paragraphs)
	if err != nil {
		return quiz.Quiz{}, paragraphs, err
	}
	return q, paragraphs, nil
}

func writeBadRequest(w http.ResponseWriter, rend *render.Renderer, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	_ = rend.ErrorPage(w, render.ErrorView{Kind: "Bad Request", Message: msg})
}

// writeError maps typed fetch and parse failures onto status codes and
// an HTML error page. paragraphs is the fetched stream, used for the
// malformed-quiz excerpt; nil when fetching itself failed.
func writeError(w http.ResponseWriter, rend *render.Renderer, log *zap.SugaredLogger, err error, paragraphs []string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var mq *quiz.MalformedQuizError
	switch {
	case errors.As(err, &mq):
		v := render.ErrorView{
			Kind:      "Malformed Quiz",
			Message:   "The document does not follow the quiz format: " + mq.Reason + ".",
			Paragraph: mq.Paragraph,
			HasIndex:  true,
		}
		if mq.Paragraph >= 0 && mq.Paragraph < len(paragraphs) {
			v.Excerpt = excerpt(paragraphs[mq.Paragraph])
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = rend.ErrorPage(w, v)

	case errors.Is(err, docs.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		_ = rend.ErrorPage(w, render.ErrorView{
			Kind:    "Not Found",
			Message: "The document does not exist. Check the document id.",
		})

	case errors.Is(err, docs.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
		_ = rend.ErrorPage(w, render.ErrorView{
			Kind:    "Forbidden",
			Message: "The document cannot be read. Share it with the service account's email and try again.",
		})

	case errors.Is(err, docs.ErrUnavailable):
		w.WriteHeader(http.StatusBadGateway)
		_ = rend.ErrorPage(w, render.ErrorView{
			Kind:    "Unavailable",
			Message: "The document provider did not respond. This is transient; try again.",
		})

	default:
		id := uuid.NewString()
		log.Errorw("internal error", "correlation_id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = rend.ErrorPage(w, render.ErrorView{
			Kind:    "Internal Error",
			Message: "Something went wrong. Correlation id: " + id,
		})
	}
}

func excerpt(s string) string {
	const max = 80
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

package render

// All pages live in one template set. Markup stays minimal; visual
// design is left to whoever fronts this service.
const pages = `
{{define "landing"}}<!doctype html>
<html>
<head><meta charset="utf-8"><title>Doc Quiz</title></head>
<body>
<h1>Google Doc Quiz</h1>
<form method="post" action="/quiz">
  <label>Google Doc ID: <input name="doc_id" required></label>
  <button type="submit">Start Quiz</button>
</form>
<p>Share the document with the service account email so the quiz can be read.</p>
</body>
</html>{{end}}

{{define "quizform"}}<!doctype html>
<html>
<head><meta charset="utf-8"><title>Quiz</title></head>
<body>
<h1>Quiz</h1>
<form method="post" action="/grade">
  <input type="hidden" name="doc_id" value="{{.DocID}}">
  {{range .Questions}}
  <fieldset>
    <legend>Question {{.Number}}: {{.Prompt}}</legend>
    {{$name := .Name}}
    {{range .Choices}}
    <label><input type="radio" name="{{$name}}" value="{{.Label}}"> {{.Label}}) {{.Text}}</label><br>
    {{end}}
  </fieldset>
  {{end}}
  <button type="submit">Submit Answers</button>
</form>
</body>
</html>{{end}}

{{define "result"}}<!doctype html>
<html>
<head><meta charset="utf-8"><title>Quiz Result</title></head>
<body>
<h1>Quiz Result</h1>
<p>Score: {{.Correct}} / {{.Total}} ({{.Percent}}%)</p>
{{range .Rows}}
<h2>Question {{.Number}}: {{.Prompt}}</h2>
{{if .IsCorrect}}
<p>Correct ({{.Correct}})</p>
{{else}}
{{range .Choices}}
<p>{{.Label}}) {{.Text}}</p>
{{end}}
<p>Your answer: {{if .Chosen}}{{.Chosen}}{{else}}no answer{{end}}<br>Correct answer: {{.Correct}}</p>
{{end}}
<hr>
{{end}}
<a href="/">Start New Quiz</a>
</body>
</html>{{end}}

{{define "error"}}<!doctype html>
<html>
<head><meta charset="utf-8"><title>{{.Kind}}</title></head>
<body>
<h1>{{.Kind}}</h1>
<p>{{.Message}}</p>
{{if .HasIndex}}
<p>Offending paragraph {{.Paragraph}}: <code>{{.Excerpt}}</code></p>
{{end}}
<a href="/">Try again</a>
</body>
</html>{{end}}
`

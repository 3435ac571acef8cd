package render

import "html/template"

var (
	quizTmpl    = template.Must(template.New("quiz").Parse(quizHTML))
	historyTmpl = template.Must(template.New("history").Parse(historyHTML))
)

const quizHTML = `<article class="quiz" data-quiz-id="{{.ID}}">
  <header class="quiz-header">
    <h2>{{.Title}}</h2>
    {{if .URL}}<a class="source-link" href="{{.URL}}" target="_blank" rel="noopener">View article</a>{{end}}
    {{if .CreatedAt}}<span class="created-at">{{.CreatedAt}}</span>{{end}}
    {{if .TakeQuizControl}}
    <form method="post" action="/intent/take-quiz">
      <button type="submit" name="id" value="{{.ID}}" class="primary">Take quiz</button>
    </form>
    {{end}}
  </header>
  {{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
  {{if .Sections}}
  <div class="sections">
    {{range .Sections}}<span class="section-chip">{{.}}</span>{{end}}
  </div>
  {{end}}
  {{if .Interactive}}
  <div class="progress">
    <div class="progress-bar"><span style="width: {{.ProgressPct}}%"></span></div>
    <div class="progress-text">{{.Answered}} of {{.Total}} answered</div>
  </div>
  {{if .Submitted}}
  <div class="score-banner">
    <strong>Score: {{.Score}} / {{.Total}}</strong>
    <span class="score-pct">{{.ScorePct}}%</span>
  </div>
  {{end}}
  {{end}}
  <ol class="questions">
    {{range .Questions}}
    <li class="question{{if .Status}} {{.Status}}{{end}}">
      <div class="question-head">
        <span class="question-number">{{.Number}}.</span>
        <span class="question-text">{{.Text}}</span>
        {{if .Difficulty}}<span class="difficulty difficulty-{{.Difficulty}}">{{.Difficulty}}</span>{{end}}
      </div>
      {{if .SectionReference}}<div class="section-ref">From: {{.SectionReference}}</div>{{end}}
      {{if .Mismatch}}<div class="mismatch-note">Answer key could not be matched to the options.</div>{{end}}
      {{if eq .Status "not-answered"}}<div class="status-note">Not answered</div>{{end}}
      <ul class="options">
        {{$q := .}}
        {{range .Options}}
        <li class="option{{if .Selected}} selected{{end}}{{if .Correct}} correct{{end}}{{if .ChosenWrong}} chosen-wrong{{end}}">
          {{if $q.Interactive}}
          <form method="post" action="/intent/select-option">
            <input type="hidden" name="question" value="{{$q.Index}}">
            <button type="submit" name="option" value="{{.Label}}" class="option-button{{if .Selected}} selected{{end}}">{{.Label}}</button>
          </form>
          {{else}}
          <span class="option-label">{{.Label}}</span>
          {{if .Correct}}<span class="marker marker-correct">correct answer</span>{{end}}
          {{if .ChosenWrong}}<span class="marker marker-wrong">your answer</span>{{end}}
          {{end}}
        </li>
        {{end}}
      </ul>
      {{if .Explanation}}<p class="explanation">{{.Explanation}}</p>{{end}}
    </li>
    {{end}}
  </ol>
  {{if .Interactive}}
  <div class="attempt-controls">
    {{if not .Submitted}}
    <form method="post" action="/intent/submit">
      <button type="submit" class="primary"{{if .SubmitDisabled}} disabled{{end}}>Submit answers</button>
    </form>
    {{end}}
    <form method="post" action="/intent/reset">
      <button type="submit">{{if .Submitted}}Retake quiz{{else}}Clear answers{{end}}</button>
    </form>
    <form method="post" action="/intent/close-modal">
      <button type="submit">Close</button>
    </form>
  </div>
  {{end}}
  {{if .Topics}}
  <div class="related-topics">
    <h3>Related topics</h3>
    {{range .Topics}}<a class="topic-chip" href="{{.Href}}" target="_blank" rel="noopener">{{.Label}}</a>{{end}}
  </div>
  {{end}}
</article>`

const historyHTML = `{{if .Rows}}
<table class="history">
  <thead>
    <tr><th>Title</th><th>Article</th><th>Created</th><th></th></tr>
  </thead>
  <tbody>
    {{range .Rows}}
    <tr{{if .ConfirmPending}} class="confirm-pending"{{end}}>
      <td class="history-title">{{.Title}}</td>
      <td><a href="{{.URL}}" target="_blank" rel="noopener">article</a></td>
      <td class="history-created">{{.CreatedAt}}</td>
      <td class="history-actions">
        <form method="post" action="/intent/view-details">
          <button type="submit" name="id" value="{{.ID}}">View</button>
        </form>
        <form method="post" action="/intent/take-quiz">
          <button type="submit" name="id" value="{{.ID}}">Take quiz</button>
        </form>
        {{if .ConfirmPending}}
        <form method="post" action="/intent/confirm-delete">
          <button type="submit" name="id" value="{{.ID}}" class="danger">Confirm delete</button>
        </form>
        <form method="post" action="/intent/close-modal">
          <button type="submit">Cancel</button>
        </form>
        {{else}}
        <form method="post" action="/intent/delete">
          <button type="submit" name="id" value="{{.ID}}" class="danger">Delete</button>
        </form>
        {{end}}
      </td>
    </tr>
    {{end}}
  </tbody>
</table>
{{else}}
<div class="history-empty">No quizzes generated yet. Paste a Wikipedia URL on the Generate tab to get started.</div>
{{end}}`

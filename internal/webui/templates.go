package webui

import "html/template"

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Wikipedia Quiz Generator</title>
  <style>
    :root {
      --bg: #0f172a;
      --panel: rgba(255, 255, 255, 0.05);
      --panel-strong: rgba(255, 255, 255, 0.1);
      --text: #e2e8f0;
      --muted: #94a3b8;
      --accent: #22d3ee;
      --good: #34d399;
      --bad: #f43f5e;
      --radius: 14px;
      font-family: "Segoe UI", "Helvetica Neue", sans-serif;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      min-height: 100vh;
      background: var(--bg);
      color: var(--text);
      padding: 32px 16px;
    }
    .shell {
      width: min(900px, 100%);
      margin: 0 auto;
      background: var(--panel);
      border: 1px solid rgba(255,255,255,0.06);
      border-radius: var(--radius);
      padding: 28px;
    }
    h1 { font-size: 26px; margin: 0 0 18px; }
    .tabs { display: flex; gap: 8px; margin-bottom: 18px; }
    .tabs form { margin: 0; }
    .tabs button {
      background: var(--panel-strong);
      border: 1px solid rgba(255,255,255,0.08);
      border-radius: 999px;
      color: var(--muted);
      padding: 8px 18px;
      cursor: pointer;
    }
    .tabs button.active { color: var(--accent); border-color: var(--accent); }
    .notice {
      background: rgba(244,63,94,0.12);
      border: 1px solid rgba(244,63,94,0.4);
      border-radius: 10px;
      padding: 10px 14px;
      margin-bottom: 16px;
    }
    .generate-form { display: flex; gap: 10px; margin-bottom: 20px; }
    .generate-form input[type=url] {
      flex: 1;
      background: rgba(255,255,255,0.04);
      border: 1px solid rgba(255,255,255,0.1);
      border-radius: 10px;
      color: var(--text);
      padding: 10px 12px;
    }
    button.primary, .generate-form button {
      background: var(--accent);
      border: none;
      border-radius: 10px;
      color: #0b1221;
      font-weight: 700;
      padding: 10px 16px;
      cursor: pointer;
    }
    button:disabled { opacity: 0.5; cursor: default; }
    button.danger { background: var(--bad); color: #fff; border: none; border-radius: 8px; padding: 6px 10px; cursor: pointer; }
    .history { width: 100%; border-collapse: collapse; }
    .history th, .history td { text-align: left; padding: 10px 8px; border-bottom: 1px solid rgba(255,255,255,0.08); }
    .history-actions { display: flex; gap: 6px; }
    .history-actions form { margin: 0; }
    .history-empty { color: var(--muted); padding: 24px 0; }
    .quiz { margin-top: 8px; }
    .quiz-header { display: flex; gap: 12px; align-items: baseline; flex-wrap: wrap; }
    .quiz-header h2 { margin: 0; }
    .created-at, .section-ref, .status-note { color: var(--muted); font-size: 14px; }
    .summary { color: var(--muted); }
    .section-chip, .topic-chip {
      display: inline-block;
      background: var(--panel-strong);
      border-radius: 999px;
      padding: 4px 12px;
      margin: 2px 4px 2px 0;
      font-size: 13px;
      color: var(--text);
      text-decoration: none;
    }
    .questions { padding-left: 0; list-style: none; }
    .question {
      background: var(--panel-strong);
      border-radius: var(--radius);
      padding: 14px 16px;
      margin-bottom: 12px;
    }
    .question.correct { border-left: 4px solid var(--good); }
    .question.incorrect { border-left: 4px solid var(--bad); }
    .question.not-answered { border-left: 4px solid var(--muted); }
    .options { list-style: none; padding-left: 0; display: grid; gap: 6px; }
    .options form { margin: 0; }
    .option-button {
      width: 100%;
      text-align: left;
      background: rgba(255,255,255,0.04);
      border: 1px solid rgba(255,255,255,0.1);
      border-radius: 10px;
      color: var(--text);
      padding: 9px 12px;
      cursor: pointer;
    }
    .option-button.selected { border-color: var(--accent); color: var(--accent); }
    .option.correct .option-label { color: var(--good); }
    .option.chosen-wrong .option-label { color: var(--bad); }
    .marker { font-size: 12px; margin-left: 8px; color: var(--muted); }
    .mismatch-note { color: var(--bad); font-size: 14px; }
    .explanation { color: var(--muted); font-size: 14px; }
    .progress-bar { background: var(--panel-strong); border-radius: 999px; height: 10px; overflow: hidden; }
    .progress-bar span { display: block; height: 100%; background: var(--accent); }
    .progress-text { color: var(--muted); font-size: 13px; margin: 6px 0 14px; }
    .score-banner { background: rgba(52,211,153,0.12); border-radius: 10px; padding: 10px 14px; margin-bottom: 14px; }
    .attempt-controls { display: flex; gap: 8px; margin-top: 12px; }
    .attempt-controls form { margin: 0; }
    .attempt-controls button { border-radius: 10px; padding: 9px 14px; cursor: pointer; border: 1px solid rgba(255,255,255,0.15); background: var(--panel-strong); color: var(--text); }
    .difficulty { font-size: 12px; border-radius: 999px; padding: 2px 8px; background: var(--panel-strong); color: var(--muted); }
    .overlay {
      position: fixed; inset: 0;
      background: rgba(2, 6, 23, 0.8);
      display: flex; align-items: flex-start; justify-content: center;
      overflow-y: auto; padding: 40px 16px;
    }
    .modal {
      width: min(760px, 100%);
      background: var(--bg);
      border: 1px solid rgba(255,255,255,0.1);
      border-radius: var(--radius);
      padding: 24px;
    }
    .modal-close { text-align: right; margin-bottom: 8px; }
    .modal-close form { display: inline; }
    .generating { color: var(--accent); margin-bottom: 14px; }
  </style>
</head>
<body>
  <div class="shell">
    <h1>Wikipedia Quiz Generator</h1>

    <div class="tabs">
      <form method="post" action="/intent/switch-tab">
        <button type="submit" name="tab" value="generate"{{if eq .Tab "generate"}} class="active"{{end}}>Generate</button>
      </form>
      <form method="post" action="/intent/switch-tab">
        <button type="submit" name="tab" value="history"{{if eq .Tab "history"}} class="active"{{end}}>History</button>
      </form>
    </div>

    {{if .Notice}}<div class="notice">{{.Notice}}</div>{{end}}

    {{if eq .Tab "generate"}}
    <form class="generate-form" method="post" action="/intent/generate">
      <input type="url" name="url" placeholder="https://en.wikipedia.org/wiki/..." value="{{.ArticleURL}}">
      <button type="submit"{{if .Generating}} disabled{{end}}>Generate quiz</button>
    </form>
    {{if .Generating}}<div class="generating">Generating your quiz, this can take a moment&hellip;</div>{{end}}
    {{if .Quiz}}{{.Quiz}}{{end}}
    {{else}}
    <form method="post" action="/intent/refresh-history">
      <button type="submit">Refresh</button>
    </form>
    {{.History}}
    {{end}}
  </div>

  {{if .ModalOpen}}
  <div class="overlay">
    <div class="modal">
      <div class="modal-close">
        <form method="post" action="/intent/close-modal">
          <button type="submit">&times; Close</button>
        </form>
      </div>
      {{.Modal}}
    </div>
  </div>
  {{end}}
</body>
</html>`

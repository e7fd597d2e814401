package site

// pageTemplate renders the whole course page. The chat panel and the CLI tab
// talk to the JSON routes registered by Handler and chatapi.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.View.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.View.Lesson.Title}} · {{.View.Module.Title}} · NetCourse</title>
  <style>` + cssContent + `</style>
</head>
<body>
  <nav class="sidebar">
    <div class="sidebar-header">
      <h2 class="project-title">NetCourse</h2>
      <a class="theme-toggle" href="{{.View.ThemeLink}}">{{if eq .View.Theme "dark"}}Light mode{{else}}Dark mode{{end}}</a>
    </div>
    {{range .Modules}}{{$m := .}}
    <div class="module{{if eq .ID $.View.Ref.ModuleID}} active{{end}}">
      <h3>{{.Title}}</h3>
      <ul>
        {{range .Lessons}}<li{{if and (eq $m.ID $.View.Ref.ModuleID) (eq .ID $.View.Ref.LessonID)}} class="current"{{end}}><a href="{{lessonURL $m.ID .ID $.View.Tab}}">{{.Title}}</a></li>
        {{end}}
      </ul>
    </div>
    {{end}}
  </nav>
  <main class="content">
    <div class="tabs">
      <a class="tab{{if eq .View.Tab "lesson"}} active{{end}}" href="{{.View.TabLink "lesson"}}">Lesson</a>
      <a class="tab{{if eq .View.Tab "cli"}} active{{end}}" href="{{.View.TabLink "cli"}}">Practice CLI</a>
      <a class="tab{{if eq .View.Tab "terminal"}} active{{end}}" href="{{.View.TabLink "terminal"}}">Terminal</a>
    </div>
    {{if eq .View.Tab "cli"}}
    <section class="cli">
      <pre id="cli-output">Type 'help' to list commands: {{join .Commands ", "}}</pre>
      <form id="cli-form"><span class="prompt">$</span><input id="cli-input" autocomplete="off" autofocus></form>
    </section>
    {{else if eq .View.Tab "terminal"}}
    <section class="terminal">
      <iframe src="{{.TerminalURL}}" title="Terminal emulator"></iframe>
    </section>
    {{else}}
    <article class="page-content">
      {{.LessonHTML}}
    </article>
    {{end}}
    <div class="pager">
      {{with .View.Prev}}<a href="{{$.View.Link .}}">&larr; Previous</a>{{end}}
      {{with .View.Next}}<a class="next" href="{{$.View.Link .}}">Next &rarr;</a>{{end}}
    </div>
  </main>
  <aside class="side-panel">
    <div class="hint">
      <h4>Hint</h4>
      <p>{{.View.Hint}}</p>
    </div>
    {{if .SearchEnabled}}
    <div class="search">
      <input id="search-input" placeholder="Search lessons..." autocomplete="off">
      <ul id="search-results"></ul>
    </div>
    {{end}}
    <div class="chat">
      <h4>Ask the tutor</h4>
      <div id="chat-log"></div>
      <form id="chat-form"><input id="chat-input" placeholder="Ask about {{.View.Lesson.Title}}..." autocomplete="off"><button>Send</button></form>
    </div>
  </aside>
  <script>` + scriptContent + `</script>
</body>
</html>`

const cssContent = `
:root { --bg: #ffffff; --fg: #1f2933; --muted: #616e7c; --accent: #2563eb; --panel: #f5f7fa; --border: #e4e7eb; }
[data-theme="dark"] { --bg: #111827; --fg: #e5e7eb; --muted: #9ca3af; --accent: #60a5fa; --panel: #1f2937; --border: #374151; }
* { box-sizing: border-box; }
body { margin: 0; display: grid; grid-template-columns: 260px 1fr 320px; min-height: 100vh; background: var(--bg); color: var(--fg); font-family: system-ui, sans-serif; }
a { color: var(--accent); text-decoration: none; }
.sidebar, .side-panel { background: var(--panel); padding: 1rem; border-right: 1px solid var(--border); overflow-y: auto; }
.side-panel { border-right: none; border-left: 1px solid var(--border); display: flex; flex-direction: column; gap: 1rem; }
.module h3 { font-size: .9rem; text-transform: uppercase; color: var(--muted); }
.module ul { list-style: none; padding: 0; }
.module li.current a { font-weight: 600; }
.content { padding: 1.5rem 2rem; overflow-y: auto; }
.tabs { display: flex; gap: .5rem; border-bottom: 1px solid var(--border); margin-bottom: 1rem; }
.tab { padding: .5rem 1rem; color: var(--muted); }
.tab.active { color: var(--fg); border-bottom: 2px solid var(--accent); }
.page-content table { border-collapse: collapse; }
.page-content td, .page-content th { border: 1px solid var(--border); padding: .25rem .5rem; }
.cli pre { background: #0b1021; color: #d1fae5; padding: 1rem; min-height: 300px; white-space: pre-wrap; }
.cli form { display: flex; gap: .5rem; font-family: monospace; }
.cli input { flex: 1; font-family: monospace; }
.terminal iframe { width: 100%; height: 70vh; border: 1px solid var(--border); }
.pager { display: flex; justify-content: space-between; margin-top: 2rem; }
.pager .next { margin-left: auto; }
#chat-log { max-height: 50vh; overflow-y: auto; display: flex; flex-direction: column; gap: .5rem; }
.msg { padding: .5rem; border-radius: 6px; white-space: pre-wrap; }
.msg.user { background: var(--accent); color: #fff; align-self: flex-end; }
.msg.assistant { background: var(--bg); border: 1px solid var(--border); }
.msg.error { color: #b91c1c; }
#chat-form { display: flex; gap: .25rem; }
#chat-input, #search-input { flex: 1; width: 100%; }
`

const scriptContent = `
(function () {
  var history = [];
  var log = document.getElementById('chat-log');
  function append(cls, text) {
    var div = document.createElement('div');
    div.className = 'msg ' + cls;
    div.textContent = text;
    log.appendChild(div);
    log.scrollTop = log.scrollHeight;
  }
  document.getElementById('chat-form').addEventListener('submit', function (e) {
    e.preventDefault();
    var input = document.getElementById('chat-input');
    var question = input.value.trim();
    if (!question) return;
    input.value = '';
    append('user', question);
    fetch('/api/chat', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ question: question, history: history })
    }).then(function (r) { return r.json(); }).then(function (data) {
      history.push({ role: 'user', content: question });
      if (data.success) {
        history.push({ role: 'assistant', content: data.answer });
        append('assistant', data.answer);
      } else {
        append('assistant error', data.message);
      }
    }).catch(function () {
      append('assistant error', 'Sorry, the assistant is unavailable right now. Please try again later.');
    });
  });

  var cliForm = document.getElementById('cli-form');
  if (cliForm) {
    var out = document.getElementById('cli-output');
    cliForm.addEventListener('submit', function (e) {
      e.preventDefault();
      var input = document.getElementById('cli-input');
      var line = input.value;
      input.value = '';
      fetch('/api/cli/run', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ line: line })
      }).then(function (r) { return r.json(); }).then(function (res) {
        if (res.clear) { out.textContent = ''; return; }
        out.textContent += '\n$ ' + line + (res.output ? '\n' + res.output : '');
        out.scrollTop = out.scrollHeight;
      });
    });
  }

  var search = document.getElementById('search-input');
  if (search) {
    var results = document.getElementById('search-results');
    search.addEventListener('keydown', function (e) {
      if (e.key !== 'Enter') return;
      fetch('/api/lessons/search?q=' + encodeURIComponent(search.value))
        .then(function (r) { return r.json(); })
        .then(function (data) {
          results.innerHTML = '';
          (data.results || []).forEach(function (hit) {
            var li = document.createElement('li');
            var a = document.createElement('a');
            a.href = '/?module=' + encodeURIComponent(hit.module) + '&lesson=' + encodeURIComponent(hit.lesson);
            a.textContent = hit.title;
            li.appendChild(a);
            results.appendChild(li);
          });
        });
    });
  }
})();
`

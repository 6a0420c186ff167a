package site

// pageTemplate is the Go html/template for the single-page shell.
// .API is empty in static exports, in which case nav links do full page loads.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="dark">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.AssetBase}}style.css{{.AssetQuery}}">
  <link rel="stylesheet" href="{{.AssetBase}}highlight.css{{.AssetQuery}}">
  <script src="https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"></script>
  <script>window.solidviewMermaid = {{.Mermaid}};</script>
</head>
<body data-api="{{.API}}"{{if .Failed}} data-failed="true"{{end}}>
  <header class="site-header">
    <h1 class="site-title"><a href="{{.HomeHref}}">{{.SiteName}}</a></h1>
    <nav class="principle-nav" aria-label="Principles">
      {{- range .Nav}}
      <a role="button" class="nav-btn{{if .Active}} active{{end}}" data-principle="{{.ID}}" href="{{.Href}}" title="{{.Title}}"{{if .Active}} aria-current="page"{{end}}>{{.Label}}</a>
      {{- end}}
    </nav>
  </header>
  <main class="content">
    <article class="page-content" id="content">
      {{.Content}}
    </article>
  </main>
  <script src="{{.AssetBase}}app.js{{.AssetQuery}}"></script>
</body>
</html>`

// cssContent is the stylesheet for the viewer shell and rendered documents.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #09122C;
  --bg-secondary: #111a38;
  --text: #f1e9ea;
  --text-muted: #b79aa0;
  --border: #2a1f3d;
  --accent: #BE3144;
  --accent-hover: #E17564;
  --accent-dark: #872341;
  --code-bg: #0d1733;
  --link: #E17564;
  --content-max-width: 960px;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

html {
  font-size: 16px;
  scroll-behavior: smooth;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
}

a { color: var(--link); text-decoration: none; }
a:hover { text-decoration: underline; }

/* ============ Header & Navigation ============ */
.site-header {
  position: sticky;
  top: 0;
  z-index: 10;
  display: flex;
  flex-wrap: wrap;
  align-items: center;
  justify-content: space-between;
  gap: 12px;
  padding: 14px 24px;
  background: var(--bg-secondary);
  border-bottom: 1px solid var(--border);
  box-shadow: var(--shadow);
}

.site-title { font-size: 1.2rem; }
.site-title a { color: var(--text); }

.principle-nav {
  display: flex;
  flex-wrap: wrap;
  gap: 8px;
}

.nav-btn {
  display: inline-block;
  padding: 6px 14px;
  border: 1px solid var(--accent-dark);
  border-radius: 6px;
  color: var(--text);
  background: transparent;
  font-size: 0.9rem;
  font-weight: 600;
  cursor: pointer;
  transition: background 0.15s, border-color 0.15s;
}

.nav-btn:hover {
  text-decoration: none;
  border-color: var(--accent-hover);
}

.nav-btn.active {
  background: var(--accent);
  border-color: var(--accent);
}

/* ============ Content ============ */
.content {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 32px 24px 64px;
}

.page-content h1, .page-content h2, .page-content h3 {
  line-height: 1.3;
  margin: 1.6em 0 0.6em;
}

.page-content h1:first-child { margin-top: 0; }
.page-content p, .page-content ul, .page-content ol { margin: 0 0 16px; }
.page-content ul, .page-content ol { padding-left: 24px; }

.page-content code {
  font-family: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace;
  font-size: 0.88em;
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 4px;
  padding: 1px 5px;
}

.page-content pre {
  overflow-x: auto;
  border-radius: 6px;
  margin: 0 0 16px;
}

.page-content pre code {
  display: block;
  padding: 16px;
  border: none;
  background: var(--code-bg);
  font-size: 0.85rem;
  line-height: 1.6;
}

.code-block {
  position: relative;
}

.copy-btn {
  position: absolute;
  top: 8px;
  right: 8px;
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: 4px;
  color: var(--text-muted);
  cursor: pointer;
  padding: 4px 8px;
  font-size: 0.75rem;
  opacity: 0;
  transition: opacity 0.2s;
}

.code-block:hover .copy-btn,
.copy-btn:focus {
  opacity: 1;
}

.copy-btn:hover {
  color: var(--accent-hover);
  border-color: var(--accent-hover);
}

/* ============ Tables ============ */
.page-content table {
  width: 100%;
  border-collapse: collapse;
  margin: 0 0 16px;
  font-size: 0.9rem;
}

.page-content th, .page-content td {
  border: 1px solid var(--border);
  padding: 8px 12px;
  text-align: left;
}

.page-content th { background: var(--bg-secondary); }

/* ============ Diagrams ============ */
.mermaid {
  margin: 0 0 16px;
  padding: 16px;
  text-align: center;
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: 6px;
  overflow-x: auto;
}

/* ============ Loading state ============ */
.page-content.loading { opacity: 0.5; }
`

// jsContent swaps documents in place, re-renders diagrams and wires the copy buttons.
const jsContent = `(function() {
  "use strict";

  var content = document.getElementById("content");
  var api = document.body.getAttribute("data-api") || "";
  var failed = document.body.getAttribute("data-failed") === "true";

  // ===== Mermaid =====
  if (typeof mermaid !== "undefined") {
    var cfg = window.solidviewMermaid || {};
    mermaid.initialize({
      startOnLoad: false,
      theme: cfg.theme || "dark",
      securityLevel: cfg.securityLevel || "loose",
      themeVariables: cfg.themeVariables || {}
    });
  }

  function renderDiagrams() {
    if (typeof mermaid === "undefined") { return; }
    // Placeholders are plain markup until rendered; clear the marker so
    // mermaid processes freshly injected ones.
    document.querySelectorAll(".mermaid").forEach(function(el) {
      el.removeAttribute("data-processed");
    });
    mermaid.run({ querySelector: ".mermaid" }).catch(function(err) {
      console.error("Mermaid rendering error:", err);
    });
  }

  // ===== Navigation =====
  function setActive(principle) {
    document.querySelectorAll("nav [data-principle]").forEach(function(btn) {
      var on = btn.getAttribute("data-principle") === principle;
      btn.classList.toggle("active", on);
      if (on) { btn.setAttribute("aria-current", "page"); } else { btn.removeAttribute("aria-current"); }
    });
  }

  function display(principle, push) {
    content.classList.add("loading");
    return fetch(api + encodeURIComponent(principle), { headers: { "Accept": "application/json" } })
      .then(function(resp) {
        if (!resp.ok) { throw new Error("HTTP " + resp.status); }
        return resp.json();
      })
      .then(function(doc) {
        content.innerHTML = doc.html;
        setActive(doc.id);
        document.title = doc.title + " — " + document.title.split(" — ").pop();
        if (push) {
          history.pushState({ principle: doc.id }, "", doc.href);
        }
        window.scrollTo(0, 0);
        renderDiagrams();
      })
      .finally(function() {
        content.classList.remove("loading");
      });
  }

  if (api && !failed) {
    document.addEventListener("click", function(e) {
      var btn = e.target.closest("nav [data-principle]");
      if (!btn || e.metaKey || e.ctrlKey || e.shiftKey || e.button !== 0) { return; }
      e.preventDefault();
      var href = btn.getAttribute("href");
      display(btn.getAttribute("data-principle"), true).catch(function(err) {
        console.error("Error loading principle:", err);
        window.location.href = href;
      });
    });

    // Entries created by in-page anchors carry no state; the path says
    // which document they belong to.
    function principleFromPath(pathname) {
      var m = /\/p\/([^\/]+)\/?$/.exec(pathname);
      return m ? decodeURIComponent(m[1]).toLowerCase() : "home";
    }

    window.addEventListener("popstate", function(e) {
      var principle = (e.state && e.state.principle) || principleFromPath(window.location.pathname);
      var current = document.querySelector("nav [data-principle].active");
      if (current && current.getAttribute("data-principle") === principle) { return; }
      display(principle, false).catch(function() { window.location.reload(); });
    });

    var initial = document.querySelector("nav [data-principle].active");
    if (initial) {
      history.replaceState({ principle: initial.getAttribute("data-principle") }, "");
    }
  }

  // ===== Copy buttons for code blocks =====
  document.addEventListener("click", function(e) {
    var btn = e.target.closest(".copy-btn");
    if (!btn) { return; }
    var block = btn.closest(".code-block");
    var code = block && block.querySelector("code");
    if (!code) { return; }

    function feedback(label) {
      btn.textContent = label;
      setTimeout(function() { btn.textContent = "Copy"; }, 2000);
    }

    if (!navigator.clipboard) {
      console.error("Clipboard API unavailable");
      feedback("Failed");
      return;
    }
    navigator.clipboard.writeText(code.textContent).then(function() {
      feedback("Copied!");
    }, function(err) {
      console.error("Copy failed:", err);
      feedback("Failed");
    });
  });

  renderDiagrams();
})();
`

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/solidview/internal/principles"
	"github.com/ziadkadry99/solidview/internal/site"
	"github.com/ziadkadry99/solidview/internal/viewer"
)

// fragment is the JSON body of /api/principles/{principle}.
type fragment struct {
	ID    principles.ID `json:"id"`
	Title string        `json:"title"`
	Href  string        `json:"href"`
	HTML  template.HTML `json:"html"`
}

// principleSummary is one item of /api/principles.
type principleSummary struct {
	ID    principles.ID `json:"id"`
	Label string        `json:"label"`
	Title string        `json:"title"`
	Href  string        `json:"href"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.Healthy() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, string(principles.Home))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, chi.URLParam(r, "principle"))
}

// servePage writes the full HTML shell for raw. Once startup loading has
// failed every page shows the failure view.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request, raw string) {
	if !s.Healthy() {
		s.writePage(w, http.StatusServiceUnavailable, viewer.Failed(principles.RouteHref))
		return
	}

	id, err := principles.Parse(raw)
	if err != nil {
		s.handleNotFound(w, r)
		return
	}
	view, err := s.deps.Viewer.Page(id)
	if err != nil {
		s.handleNotFound(w, r)
		return
	}
	s.writePage(w, http.StatusOK, view)
}

func (s *Server) writePage(w http.ResponseWriter, status int, view viewer.View) {
	var buf bytes.Buffer
	if err := s.shell.Write(&buf, view); err != nil {
		s.logger.Error("rendering page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}
	view := viewer.View{
		Title:   "Not Found",
		Content: template.HTML(`<h1>Not Found</h1><p>There is no document at this address. Pick a principle above.</p>`),
		Nav:     viewer.Failed(principles.RouteHref).Nav,
	}
	s.writePage(w, http.StatusNotFound, view)
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	var body, contentType string
	switch chi.URLParam(r, "asset") {
	case site.StyleAsset:
		body, contentType = site.Stylesheet(), "text/css; charset=utf-8"
	case site.HighlightAsset:
		body, contentType = s.deps.HighlightCSS, "text/css; charset=utf-8"
	case site.ScriptAsset:
		body, contentType = site.Script(), "text/javascript; charset=utf-8"
	default:
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(body))
}

func (s *Server) handleListPrinciples(w http.ResponseWriter, r *http.Request) {
	if !s.Healthy() {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "documents failed to load"})
		return
	}
	var out []principleSummary
	for _, p := range principles.Catalog() {
		title := p.Title
		if view, err := s.deps.Viewer.Page(p.ID); err == nil {
			title = view.Title
		}
		out = append(out, principleSummary{
			ID:    p.ID,
			Label: p.Label,
			Title: title,
			Href:  principles.RouteHref(p.ID),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	if !s.Healthy() {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "documents failed to load"})
		return
	}
	id, err := principles.Parse(chi.URLParam(r, "principle"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	view, err := s.deps.Viewer.Page(id)
	if errors.Is(err, viewer.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	} else if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "rendering failed"})
		return
	}
	writeJSON(w, http.StatusOK, fragment{
		ID:    view.Active,
		Title: view.Title,
		Href:  principles.RouteHref(view.Active),
		HTML:  view.Content,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !s.Healthy() {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "documents failed to load"})
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameter q is required"})
		return
	}
	results := site.Search(s.deps.Search, query)
	if results == nil {
		results = []site.SearchResult{}
	}
	writeJSON(w, http.StatusOK, results)
}

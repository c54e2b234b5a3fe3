// Package http provides the HTTP API for browsing and downloading loaded
// TEI documents.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	session digitalsee.LibraryService
	log     *slog.Logger
}

// NewServer creates and configures the HTTP server around a library session.
func NewServer(session digitalsee.LibraryService, log *slog.Logger) *Server {
	s := &Server{
		session: session,
		log:     log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/api/documents", s.handleListDocuments)
	r.Get("/api/documents/{id}", s.handleGetDocument)
	r.With(DownloadLimiter()).Get("/api/documents/{id}/download", s.handleDownload)
	r.Get("/api/facets", s.handleFacets)
	r.Post("/api/reload", s.handleReload)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// documentSummary is the listing view of a document: header metadata and
// section counts, without the serialized section bodies.
type documentSummary struct {
	Identifier   string   `json:"identifier"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Publisher    string   `json:"publisher"`
	Date         string   `json:"date"`
	Places       []string `json:"places"`
	Keywords     []string `json:"keywords"`
	Commentaries int      `json:"commentaries"`
	Editions     int      `json:"editions"`
}

func summarize(doc *digitalsee.Document) documentSummary {
	return documentSummary{
		Identifier:   doc.Identifier,
		Title:        doc.Title,
		Author:       doc.Author,
		Publisher:    doc.Publisher,
		Date:         doc.Date,
		Places:       doc.Places,
		Keywords:     doc.Keywords,
		Commentaries: len(doc.Commentaries),
		Editions:     len(doc.Editions),
	}
}

// handleListDocuments lists loaded documents, filtered by the author, place,
// and keyword query parameters. Results preserve directory scan order.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	lib, ok := s.library(w)
	if !ok {
		return
	}

	filter := digitalsee.Filter{
		Author:  r.URL.Query().Get("author"),
		Place:   r.URL.Query().Get("place"),
		Keyword: r.URL.Query().Get("keyword"),
	}

	docs := lib.Find(filter)
	summaries := make([]documentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, summarize(doc))
	}

	writeJSON(w, map[string]any{
		"total":     len(summaries),
		"documents": summaries,
	})
}

// handleGetDocument returns a single document with full section content.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	lib, ok := s.library(w)
	if !ok {
		return
	}

	doc, err := lib.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, doc)
}

// handleDownload returns the original XML content byte-for-byte.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	lib, ok := s.library(w)
	if !ok {
		return
	}

	doc, err := lib.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Identifier))
	w.Header().Set("ETag", fmt.Sprintf("%q", doc.ContentHash))
	w.Write(doc.Raw)
}

// handleFacets returns corpus-wide facets, narrowed to a single author when
// the author query parameter is set.
func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	lib, ok := s.library(w)
	if !ok {
		return
	}

	facets := lib.Facets()
	if author := r.URL.Query().Get("author"); author != "" {
		facets = facets.ForAuthor(author)
	}
	writeJSON(w, facets)
}

// handleReload runs a fresh load pass over the source directory.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	lib, err := s.session.Reload(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	skipped := make([]string, 0, len(lib.Warnings))
	for _, warn := range lib.Warnings {
		skipped = append(skipped, warn.File)
	}
	writeJSON(w, map[string]any{
		"loadId":    lib.LoadID,
		"documents": lib.Len(),
		"skipped":   skipped,
	})
}

// library fetches the current library, writing a 503 when nothing has been
// loaded yet.
func (s *Server) library(w http.ResponseWriter) (*digitalsee.Library, bool) {
	lib := s.session.Library()
	if lib == nil {
		jsonError(w, "no library loaded", http.StatusServiceUnavailable)
		return nil, false
	}
	return lib, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeError maps application error codes onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch digitalsee.ErrorCode(err) {
	case digitalsee.ENOTFOUND:
		status = http.StatusNotFound
	case digitalsee.EINVALID:
		status = http.StatusBadRequest
	case digitalsee.ECONFLICT:
		status = http.StatusConflict
	}
	jsonError(w, digitalsee.ErrorMessage(err), status)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

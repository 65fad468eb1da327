package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"surveyscope/internal"
	"surveyscope/internal/config"
	apperrors "surveyscope/internal/errors"
	"surveyscope/internal/report"
)

// Version is the automation API version string.
const Version = "1.0.0"

// Server is the machine-facing API for pipelines and scripts. It serves
// raw report JSON without the upload flow; uploads go through the UI
// server, which shares the same report service.
type Server struct {
	router  *chi.Mux
	cfg     *config.Config
	logger  *internal.Logger
	reports *report.Service
}

// NewServer creates the automation API server.
func NewServer(cfg *config.Config, logger *internal.Logger, reports *report.Service) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		cfg:     cfg,
		logger:  logger,
		reports: reports,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/version", s.handleVersion)
	s.router.Get("/reports", s.handleListReports)
	s.router.Get("/reports/{id}", s.handleGetReport)
	s.router.Get("/reports/{id}/themes", s.handleGetThemes)
}

// Run starts the API server on the configured port.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.APIPort
	s.logger.Info("automation API listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": Version})
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports := s.reports.ListReports()
	type summary struct {
		ID              string `json:"id"`
		TableHash       string `json:"table_hash"`
		RespondentCount int    `json:"respondent_count"`
	}
	out := make([]summary, 0, len(reports))
	for _, rep := range reports {
		out = append(out, summary{ID: rep.ID, TableHash: rep.TableHash, RespondentCount: rep.RespondentCount})
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"reports": out})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.GetReport(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleGetThemes(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.GetReport(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"open_text": rep.OpenText})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if apperrors.HasCode(err, apperrors.CodeNotFound) {
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  apperrors.GetCode(err),
	})
}

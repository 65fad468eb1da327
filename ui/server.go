package ui

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"surveyscope/adapters/excel"
	"surveyscope/internal"
	"surveyscope/internal/config"
	apperrors "surveyscope/internal/errors"
	"surveyscope/internal/report"
)

// Server is the analyst-facing web server: upload a survey export, get
// the scored report back.
type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	logger  *internal.Logger
	reports *report.Service
}

// NewServer creates the web server.
func NewServer(cfg *config.Config, logger *internal.Logger, reports *report.Service) *Server {
	gin.SetMode(cfg.Server.GinMode)
	s := &Server{
		router:  gin.Default(),
		cfg:     cfg,
		logger:  logger,
		reports: reports,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	s.router.POST("/api/upload", s.handleUpload)
	s.router.GET("/api/reports", s.handleListReports)
	s.router.GET("/api/reports/:id", s.handleGetReport)
	s.router.GET("/api/reports/:id/anomalies", s.handleGetAnomalies)
	s.router.GET("/api/reports/:id/feedback", s.handleGetFeedback)
	s.router.GET("/api/reports/:id/markdown", s.handleGetMarkdown)

	s.router.GET("/reports/:id", s.handleReportPage)
}

// Run starts the server on the configured port.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port
	s.logger.Info("UI server listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleUpload accepts a survey export (xlsx, xls or csv), runs the
// analysis, and returns the report.
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing form file 'file'"})
		return
	}
	if file.Size > s.cfg.Upload.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("file exceeds the %d byte limit", s.cfg.Upload.MaxFileSize),
		})
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !s.extensionAllowed(ext) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("unsupported file type %q, allowed: %s", ext, strings.Join(s.cfg.Upload.AllowedTypes, ", ")),
		})
		return
	}

	tmp, err := os.CreateTemp(s.cfg.Upload.TempDir, "survey-*"+ext)
	if err != nil {
		s.logger.Error("creating temp file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store upload"})
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		s.logger.Error("saving upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store upload"})
		return
	}

	table, err := excel.NewDataReader(tmpPath).ReadTable()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rep, err := s.reports.Analyze(c.Request.Context(), table)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (s *Server) handleListReports(c *gin.Context) {
	reports := s.reports.ListReports()
	summaries := make([]gin.H, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, gin.H{
			"id":               r.ID,
			"created_at":       r.CreatedAt,
			"respondent_count": r.RespondentCount,
			"table_hash":       r.TableHash,
		})
	}
	c.JSON(http.StatusOK, gin.H{"reports": summaries})
}

func (s *Server) handleGetReport(c *gin.Context) {
	rep, err := s.reports.GetReport(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (s *Server) handleGetAnomalies(c *gin.Context) {
	rep, err := s.reports.GetReport(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"anomalies": rep.Anomalies})
}

func (s *Server) handleGetFeedback(c *gin.Context) {
	rep, err := s.reports.GetReport(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"open_text": rep.OpenText})
}

func (s *Server) handleGetMarkdown(c *gin.Context) {
	rep, err := s.reports.GetReport(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(report.RenderMarkdown(rep)))
}

// handleReportPage renders the report as a standalone HTML page.
func (s *Server) handleReportPage(c *gin.Context) {
	rep, err := s.reports.GetReport(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	var page strings.Builder
	page.WriteString("<!DOCTYPE html><html lang=\"zh-CN\"><head><meta charset=\"utf-8\">")
	page.WriteString("<title>调研报告</title>")
	page.WriteString("<style>body{font-family:sans-serif;max-width:860px;margin:2rem auto;padding:0 1rem;color:#1f2937}table{border-collapse:collapse}td,th{border:1px solid #e5e7eb;padding:0.3rem 0.8rem}</style>")
	page.WriteString("</head><body>")
	page.Write(report.RenderHTML(rep))
	page.WriteString("</body></html>")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page.String()))
}

func (s *Server) extensionAllowed(ext string) bool {
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

// respondError maps application error codes to HTTP statuses.
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeNoMatchingColumns, apperrors.CodeEmptyTable, apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed: %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": apperrors.GetCode(err)})
}

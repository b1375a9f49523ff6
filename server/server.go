// Package server is the thin HTTP presentation shell over the detection
// pipeline. It owns no pipeline logic: it decodes uploads, invokes one run,
// and renders the result.
package server

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hannes/philter/extract"
	"github.com/hannes/philter/highlight"
	"github.com/hannes/philter/phi"
)

// Server holds the state for the REST API server.
type Server struct {
	pipeline *phi.Pipeline
	router   *gin.Engine
}

// NewServer creates a new Server instance over the given pipeline.
func NewServer(pipeline *phi.Pipeline) *Server {
	r := gin.Default()
	s := &Server{
		pipeline: pipeline,
		router:   r,
	}
	s.setupRoutes()
	return s
}

// Run starts the server on the specified address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)
	s.router.POST("/v1/analyze", s.handleAnalyze)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

type analyzeResponse struct {
	ID       string           `json:"id"`
	Text     string           `json:"text"`
	Findings []phi.Finding    `json:"findings"`
	Spans    []highlight.Span `json:"spans"`
	Summary  map[string]int   `json:"summary"`
	HTML     string           `json:"html"`
}

// handleAnalyze accepts a multipart upload ("file") plus repeated "exclude"
// form values naming PHI categories to advise the service to skip.
func (s *Server) handleAnalyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not open upload"})
		return
	}
	defer f.Close()

	input, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	fileExt := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	exclude := c.PostFormArray("exclude")

	doc, err := s.pipeline.Run(c.Request.Context(), input, fileExt, exclude)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedFormat), errors.Is(err, extract.ErrDecode):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	spans := highlight.Resolve(doc.Text, doc.Findings())
	c.JSON(http.StatusOK, analyzeResponse{
		ID:       doc.ID.String(),
		Text:     doc.Text,
		Findings: doc.Findings(),
		Spans:    spans,
		Summary:  highlight.Summary(spans),
		HTML:     highlight.Annotate(doc.Text, spans, highlight.HTMLMarker),
	})
}

package web

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/docproof/internal/core/domain"
)

// proofreadRequest is the body of POST /api/proofread.
type proofreadRequest struct {
	Link string `json:"link" form:"link"`
}

// RunResponse is the JSON view of a finished run.
type RunResponse struct {
	ID         string `json:"id"`
	State      string `json:"state"`
	DocumentID string `json:"document_id,omitempty"`
	Original   string `json:"original,omitempty"`
	Revised    string `json:"revised,omitempty"`
	Model      string `json:"model,omitempty"`
	Error      string `json:"error,omitempty"`
	ErrorCode  string `json:"error_code,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

func newRunResponse(run *domain.Run, code string) RunResponse {
	resp := RunResponse{
		ID:         run.ID,
		State:      run.State.String(),
		DocumentID: run.Reference.String(),
		Model:      run.Model,
		Error:      run.Message(),
		ErrorCode:  code,
		DurationMS: run.Duration().Milliseconds(),
	}
	if run.HasOriginal() {
		resp.Original = string(run.Original)
	}
	if run.HasRevised() {
		resp.Revised = string(run.Revised)
	}
	return resp
}

// pageData feeds templates/index.html.
type pageData struct {
	Link         string
	Original     string
	Revised      string
	ShowOriginal bool
	ShowRevised  bool
	Error        string
	Model        string
}

func (s *Server) routes(reg *prometheus.Registry) {
	s.app.Get("/", s.handleIndex)
	s.app.Post("/", s.handleSubmit)
	s.app.Post("/api/proofread", s.handleAPIProofread)
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	if reg != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	return s.render(c, pageData{Model: s.proofread.ModelName()})
}

// handleSubmit runs the pipeline for the form field and renders the result.
// A blank link re-renders the empty page.
func (s *Server) handleSubmit(c *fiber.Ctx) error {
	link := c.FormValue("link")
	run := s.proofread.Run(c.UserContext(), link, nil)

	data := pageData{Link: link, Model: run.Model, Error: run.Message()}
	if run.HasOriginal() {
		data.ShowOriginal = true
		data.Original = string(run.Original)
	}
	if run.HasRevised() {
		data.ShowRevised = true
		data.Revised = string(run.Revised)
	}

	status, _ := runStatus(run)
	if run.State == domain.RunIdle {
		status = fiber.StatusOK
	}
	c.Status(status)
	return s.render(c, data)
}

func (s *Server) handleAPIProofread(c *fiber.Ctx) error {
	var req proofreadRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "request body must contain a link")
	}
	if strings.TrimSpace(req.Link) == "" {
		return writeError(c, fiber.StatusBadRequest, "LINK_REQUIRED", "link is required")
	}

	run := s.proofread.Run(c.UserContext(), req.Link, nil)
	status, code := runStatus(run)
	return c.Status(status).JSON(newRunResponse(run, code))
}

func (s *Server) render(c *fiber.Ctx, data pageData) error {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

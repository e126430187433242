package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/scoring"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RuleVersion string `json:"ruleVersion"`
}

type scoreResponse struct {
	Result   *scoring.Result `json:"result"`
	Warnings []string        `json:"warnings,omitempty"`
	AuditID  string          `json:"auditId,omitempty"`
}

type validateResponse struct {
	Valid   bool   `json:"valid"`
	Version string `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, healthResponse{
		Status:      "ok",
		Timestamp:   time.Now().Format(time.RFC3339),
		RuleVersion: s.engine.Version(),
	})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var candidate scoring.CandidateProfile
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "invalid candidate profile: " + err.Error()})
		return
	}

	warnings := scoring.ValidateCandidate(&candidate)
	result := s.engine.Score(&candidate)

	resp := scoreResponse{Result: result, Warnings: warnings}

	if s.recorder != nil {
		id, err := s.recorder.Record(r.Context(), result)
		if err != nil {
			// The audit trail is best effort. A storage outage must not
			// turn a successful scoring into a failed request.
			s.logger.Warn("audit record failed", zap.Error(err))
		} else {
			resp.AuditID = id
		}
	}

	s.logger.Info("scored candidate",
		logger.ScoringFields(result.RuleVersion, candidate.Name)...,
	)

	render.JSON(w, r, resp)
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	data, err := s.engine.ExportRules()
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(data)
}

func (s *Server) handleRulesVersion(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"version": s.engine.Version()})
}

func (s *Server) handleRulesValidate(w http.ResponseWriter, r *http.Request) {
	body := json.NewDecoder(r.Body)
	raw := json.RawMessage{}
	if err := body.Decode(&raw); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "invalid json: " + err.Error()})
		return
	}

	rules, err := scoring.ParseRuleSet(raw)
	if err != nil {
		render.JSON(w, r, validateResponse{Valid: false, Error: err.Error()})
		return
	}

	if err := rules.Validate(); err != nil {
		render.JSON(w, r, validateResponse{Valid: false, Version: rules.Version, Error: err.Error()})
		return
	}

	render.JSON(w, r, validateResponse{Valid: true, Version: rules.Version})
}

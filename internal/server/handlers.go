package server

import (
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/tcoloa/lease-calculator/internal/calculation"
	"github.com/tcoloa/lease-calculator/internal/config"
	"github.com/tcoloa/lease-calculator/internal/domain"
)

// Request bodies larger than this are rejected; configs are tiny.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type compareRequest struct {
	Offers []compareOffer `json:"offers"`
}

type compareOffer struct {
	Name   string          `json:"name"`
	Config json.RawMessage `json:"config"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.readConfig(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.engine.BuildBreakdown(cfg))
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.readConfig(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	series := s.engine.CumulativeMonthlySeries(cfg)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"months": len(series),
		"series": series,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.readConfig(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.engine.Summarize(cfg))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read request body: %w", err))
		return
	}
	var req compareRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to parse request: %w", err))
		return
	}
	if len(req.Offers) == 0 {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("no offers provided"))
		return
	}

	offers := make([]calculation.NamedConfig, 0, len(req.Offers))
	for i, o := range req.Offers {
		fc, err := s.parser.Parse(o.Config)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("offer %d: %w", i, err))
			return
		}
		cfg, notes := config.Normalize(fc)
		s.logClamps(notes)
		name := o.Name
		if name == "" {
			name = fmt.Sprintf("offer-%d", i+1)
		}
		offers = append(offers, calculation.NamedConfig{Name: name, Config: &cfg})
	}

	cmp, err := s.engine.CompareOffers(offers)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, cmp)
}

// readConfig parses and normalizes a configuration document from the request
// body.
func (s *Server) readConfig(r *http.Request) (*domain.LeaseConfig, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	fc, err := s.parser.Parse(body)
	if err != nil {
		return nil, err
	}
	cfg, notes := config.Normalize(fc)
	s.logClamps(notes)
	return &cfg, nil
}

func (s *Server) logClamps(notes []string) {
	for _, note := range notes {
		s.logger.Debug("normalization clamp", zap.String("field", note))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("request failed", zap.Int("status", status), zap.Error(err))
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/san-kum/combviz/internal/config"
	"github.com/san-kum/combviz/internal/export"
	"github.com/san-kum/combviz/internal/i18n"
	"github.com/san-kum/combviz/internal/trace"
)

const (
	maxBodyBytes = 1 << 20
	// maxInputLen bounds request inputs. 256 values give about 5k steps
	// of full snapshots, roughly 9 MB.
	maxInputLen = 256
	// compactAbove forces the delta encoding for longer inputs.
	compactAbove = 64
)

// checkInputLen rejects inputs whose trace would be too costly to build.
func checkInputLen(n int) error {
	if n > maxInputLen {
		return &trace.InputError{Length: n, Index: -1, Reason: fmt.Sprintf("more than %d values", maxInputLen)}
	}
	return nil
}

type traceRequest struct {
	Input   []float64 `json:"input,omitempty"`
	Preset  string    `json:"preset,omitempty"`
	Size    int       `json:"size,omitempty"`
	Min     int       `json:"min,omitempty"`
	Max     int       `json:"max,omitempty"`
	Seed    int64     `json:"seed,omitempty"`
	Locale  string    `json:"locale,omitempty"`
	Compact bool      `json:"compact,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, config.ListPresets())
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	var req traceRequest
	if err := readJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	input, err := s.resolveInput(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tag := i18n.Parse(req.Locale)
	tr, err := trace.GenerateWith(input, trace.WithAnnotator(i18n.NewAnnotator(tag)))
	if err != nil {
		if errors.Is(err, trace.ErrInvalidInput) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.Error("generate trace", "err", err)
		s.writeError(w, http.StatusInternalServerError, "generate trace failed")
		return
	}

	opts := []export.DocOption{export.WithID(uuid.NewString()), export.WithLocale(tag.String())}
	if req.Compact || len(input) > compactAbove {
		opts = append(opts, export.Compact())
	}
	doc := export.NewDocument(input, tr, opts...)
	s.log.Debug("trace generated", "id", doc.ID, "size", len(input), "steps", len(tr))
	s.writeJSON(w, http.StatusOK, doc)
}

// resolveInput returns the request's explicit input, or builds one from the
// named preset over the server defaults.
func (s *Server) resolveInput(req traceRequest) ([]float64, error) {
	if len(req.Input) > 0 {
		if err := checkInputLen(len(req.Input)); err != nil {
			return nil, err
		}
		return req.Input, nil
	}

	c := *s.cfg
	c.Input = nil
	if req.Preset != "" {
		c.Preset = req.Preset
	}
	if req.Size > 0 {
		c.Size = req.Size
	}
	if req.Min != 0 || req.Max != 0 {
		c.Min, c.Max = req.Min, req.Max
	}
	if req.Seed != 0 {
		c.Seed = req.Seed
	}
	if err := checkInputLen(c.Size); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.Source()(), nil
}

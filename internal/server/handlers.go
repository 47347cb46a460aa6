package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/scadgen/pkg/buildinfo"
	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/model"
	"github.com/matzehuels/scadgen/pkg/pipeline"
)

// Response content types by pipeline format.
var contentTypes = map[string]string{
	pipeline.FormatSCAD: "text/plain; charset=utf-8",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatSVG:  "image/svg+xml",
}

type errorBody struct {
	Code     errors.Code `json:"code"`
	Message  string      `json:"message"`
	RenderID string      `json:"render_id,omitempty"`
}

type healthBody struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, pipeline.Options{Formats: []string{pipeline.FormatSCAD}})
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatDOT
	}
	if format != pipeline.FormatDOT && format != pipeline.FormatSVG {
		writeError(w, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidFormat, "tree format must be dot or svg, got %q", format), "")
		return
	}

	detailed := false
	if v := r.URL.Query().Get("detailed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest,
				errors.New(errors.ErrCodeInvalidInput, "detailed must be a boolean, got %q", v), "")
			return
		}
		detailed = b
	}
	s.render(w, r, pipeline.Options{Formats: []string{format}, Detailed: detailed})
}

// render runs the pipeline on the request body and writes the single
// requested artifact.
func (s *Server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	id := uuid.NewString()
	logger := s.logger.With("render_id", id)
	w.Header().Set("X-Render-ID", id)

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				errors.New(errors.ErrCodeInvalidInput, "model exceeds %d bytes", MaxBodyBytes), id)
			return
		}
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"), id)
		return
	}

	opts.Source = "request:" + id
	opts.Logger = logger
	result, err := s.runner.Execute(r.Context(), data, opts)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error("render failed", "err", err)
		} else {
			logger.Debug("model rejected", "code", errors.GetCode(err), "err", err)
		}
		writeError(w, status, err, id)
		return
	}

	format := opts.Formats[0]
	if result.CacheInfo.AllHit() {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	if errors.IsConstruction(err) {
		return http.StatusUnprocessableEntity
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidInput:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, err error, id string) {
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	var pe *model.PathError
	if stderrors.As(err, &pe) {
		msg = pe.Error()
	}
	if status == http.StatusInternalServerError {
		code, msg = errors.ErrCodeInternal, "internal error"
	}
	writeJSON(w, status, errorBody{Code: code, Message: msg, RenderID: id})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/funnelchart/pkg/buildinfo"
	"github.com/matzehuels/funnelchart/pkg/errors"
	"github.com/matzehuels/funnelchart/pkg/pipeline"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
)

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

type healthBody struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Build: buildinfo.Get()})
}

// handleRender renders the settings in the request body into the format
// selected by the query string.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			err = errors.Wrap(errors.ErrCodeTooLarge, err, "request body exceeds %d bytes", tooLarge.Limit)
		} else {
			err = errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
		}
		s.writeError(w, r, err)
		return
	}
	opts.Settings, err = config.Decode(body, config.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Logger = s.logger.With("request_id", RequestIDFromContext(r.Context()))

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	cache := "miss"
	if result.CacheInfo.AllHit() {
		cache = "hit"
	}
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("X-Cache", cache)
	if result.ConfigHash != "" {
		w.Header().Set("ETag", strconv.Quote(result.ConfigHash))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// renderOptions reads the query parameters of a render request.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Formats:    []string{pipeline.FormatSVG},
		Background: q.Get("background"),
	}
	if f := q.Get("format"); f != "" {
		opts.Formats = []string{f}
	}

	var err error
	if opts.Width, err = floatParam(q.Get("width"), "width"); err != nil {
		return opts, err
	}
	if opts.Height, err = floatParam(q.Get("height"), "height"); err != nil {
		return opts, err
	}
	if opts.Scale, err = floatParam(q.Get("scale"), "scale"); err != nil {
		return opts, err
	}
	opts.EmbedFont = q.Get("embed_font") == "true"

	opts.SetDefaults()
	return opts, opts.Validate()
}

func floatParam(v, name string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidDimension, err, "%s must be a number", name)
	}
	return f, nil
}

// writeError maps err onto a status code: caller mistakes are 400, an
// oversized body 413, a missing resource 404, everything else 500. Internal
// details are not exposed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	msg := "internal error"

	switch {
	case code == errors.ErrCodeTooLarge:
		status = http.StatusRequestEntityTooLarge
		msg = errors.UserMessage(err)
	case errors.IsClientError(err):
		status = http.StatusBadRequest
		msg = errors.UserMessage(err)
	case code == errors.ErrCodeNotFound:
		status = http.StatusNotFound
		msg = errors.UserMessage(err)
	default:
		s.logger.Error("render failed",
			"request_id", RequestIDFromContext(r.Context()),
			"error", err)
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}

	writeJSON(w, status, errorBody{
		Error:     errorDetail{Code: string(code), Message: msg},
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

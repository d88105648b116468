package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/chartgeom/pkg/buildinfo"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
	"github.com/matzehuels/chartgeom/pkg/pipeline"
	"github.com/matzehuels/chartgeom/pkg/render"
)

// chartRequest is the body of POST /v1/charts/{kind}. Data may be any list
// of {label, value} records; malformed records are dropped, not rejected.
type chartRequest struct {
	Data       any      `json:"data"`
	Size       float64  `json:"size"`
	Height     float64  `json:"height"`
	Width      float64  `json:"width"`
	Padding    *float64 `json:"padding"`
	Colors     []string `json:"colors"`
	Donut      bool     `json:"donut"`
	Title      string   `json:"title"`
	Background string   `json:"background"`
	Labels     bool     `json:"labels"`
	Format     string   `json:"format"`
	Strict     bool     `json:"strict"`
	Refresh    bool     `json:"refresh"`
}

type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	kind, err := chart.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeErr(w, r, errors.New(errors.ErrCodeInvalidChartType, "%v", err))
		return
	}

	req, err := decodeChartRequest(w, r)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	format := strings.ToLower(req.Format)
	if format == "" {
		format = render.FormatJSON
	}
	if format != render.FormatJSON && format != render.FormatSVG {
		writeErr(w, r, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be json or svg)", req.Format))
		return
	}

	opts := pipeline.Options{
		Kind:       kind,
		Size:       req.Size,
		Height:     req.Height,
		Width:      req.Width,
		Padding:    req.Padding,
		Colors:     req.Colors,
		Donut:      req.Donut,
		Title:      req.Title,
		Background: req.Background,
		Labels:     req.Labels,
		Formats:    []string{format},
		Strict:     req.Strict,
		Refresh:    req.Refresh,
	}
	res, err := s.runner.Execute(r.Context(), chart.Coerce(req.Data), opts)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	w.Header().Set("X-Cache", cacheStatus(res.CacheInfo))
	if res.Geometry.Empty() {
		w.Header().Set("X-No-Data", res.Geometry.NoData().String())
	}
	contentType := "application/json"
	if format == render.FormatSVG {
		contentType = "image/svg+xml"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func decodeChartRequest(w http.ResponseWriter, r *http.Request) (chartRequest, error) {
	var req chartRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return req, errors.New(errors.ErrCodeInvalidInput, "malformed request body: %v", err)
	}
	if dec.More() {
		return req, errors.New(errors.ErrCodeInvalidInput, "malformed request body: trailing data")
	}
	return req, nil
}

func cacheStatus(ci pipeline.CacheInfo) string {
	switch {
	case ci.ComputeHit && ci.RenderHit:
		return "hit"
	case ci.ComputeHit:
		return "partial"
	}
	return "miss"
}

func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	writeError(w, r, errors.HTTPStatus(err), code, errors.UserMessage(err))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	writeJSON(w, status, errorBody{
		Error:     errorDetail{Code: code, Message: msg},
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, `{"error":{"code":"INTERNAL_ERROR","message":"encode response"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

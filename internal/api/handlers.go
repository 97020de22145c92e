// SPDX-License-Identifier: MIT
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"edlkit/internal/edl"
	"edlkit/internal/metrics"
	"edlkit/internal/timecode"
)

// maxEDLBody caps request bodies; cutting room EDLs are a few hundred KB at
// most.
const maxEDLBody = 10 * 1024 * 1024

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParse parses the EDL document in the request body and returns the
// typed edit list. Optional query parameters: rate (frames per second,
// default from config) and shot_regexp (default from config).
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	rate, err := s.requestRate(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, codeInvalidRate, err.Error())
		return
	}

	shotExpr := r.URL.Query().Get("shot_regexp")
	if shotExpr == "" {
		shotExpr = s.cfg.ShotRegexp
	}
	proc, err := edl.NewProcessor(shotExpr)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, codeInvalidRegexp, err.Error())
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxEDLBody)
	start := time.Now()
	list, err := edl.Parse(r.Context(), body,
		edl.WithRate(rate),
		edl.WithVisitor(proc.Process),
	)
	if err != nil {
		metrics.ObserveParse(metrics.OutcomeFailure, 0, time.Since(start))
		switch {
		case errors.Is(err, edl.ErrDropFrame), errors.Is(err, edl.ErrBlackSlug):
			writeProblem(w, http.StatusUnprocessableEntity, codeUnsupportedEDL, err.Error())
		default:
			writeProblem(w, http.StatusBadRequest, codeParseFailed, err.Error())
		}
		return
	}
	metrics.ObserveParse(metrics.OutcomeSuccess, len(list.Edits), time.Since(start))
	writeJSON(w, http.StatusOK, list)
}

type convertRequest struct {
	// Value is either a hh:mm:ss:ff timecode or an absolute frame number.
	Value string  `json:"value"`
	FPS   float64 `json:"fps,omitempty"`
}

type convertResponse struct {
	Timecode string  `json:"timecode"`
	Frame    int     `json:"frame"`
	Seconds  string  `json:"seconds"`
	FPS      float64 `json:"fps"`
}

// handleConvert converts between timecode strings and frame numbers.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, codeInvalidBody, err.Error())
		return
	}
	if req.Value == "" {
		writeProblem(w, http.StatusBadRequest, codeInvalidBody, "value is required")
		return
	}

	fps := req.FPS
	if fps == 0 {
		fps = s.cfg.FrameRate
	}
	rate, err := timecode.NewRateFromFloat(fps)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, codeInvalidRate, err.Error())
		return
	}

	tc, err := timecode.Parse(req.Value, rate)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, codeInvalidTimecode, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, convertResponse{
		Timecode: tc.String(),
		Frame:    tc.Frame(),
		Seconds:  tc.Seconds().String(),
		FPS:      rate.Float64(),
	})
}

// requestRate resolves the frame rate for a request from its query string,
// falling back to the configured default.
func (s *Server) requestRate(r *http.Request) (timecode.Rate, error) {
	if q := r.URL.Query().Get("rate"); q != "" {
		return timecode.ParseRate(q)
	}
	return timecode.NewRateFromFloat(s.cfg.FrameRate)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
)

// Analyzer runs one end-to-end company analysis.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Report, error)
}

// AnalysisHandler serves POST /api/v1/analyze.
type AnalysisHandler struct {
	coordinator Analyzer
	maxBodySize int64
	logger      logging.Logger
}

// NewAnalysisHandler creates an AnalysisHandler.
func NewAnalysisHandler(coordinator Analyzer, maxBodySize int64, logger logging.Logger) *AnalysisHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if maxBodySize <= 0 {
		maxBodySize = 1 << 20
	}
	return &AnalysisHandler{
		coordinator: coordinator,
		maxBodySize: maxBodySize,
		logger:      logger.Named("analyze"),
	}
}

// Analyze decodes the request, runs the analysis, and writes the report.
// Degraded upstream sources surface as report warnings, not errors; the
// request itself fails only when the report carries no usable evidence at
// all and the mandatory legal source did not complete.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req analysis.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.Validation("request body is not valid JSON").WithCause(err))
		return
	}

	report, err := h.coordinator.Analyze(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := totalFailure(report); err != nil {
		h.logger.Error("analysis produced no evidence",
			logging.String("request_id", report.RequestID),
			logging.String("company", report.CompanyName))
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, report)
}

// totalFailure reports an error when no source produced anything and the
// legal findings carry no signal.  Partial degradation is not a failure.
func totalFailure(report *analysis.Report) error {
	if report.Findings.Outcome != analysis.OutcomeNoData {
		return nil
	}
	legalTimedOut := false
	for _, src := range report.DataSources {
		if src.State == analysis.SourceOK {
			return nil
		}
		if src.Name == analysis.SourceNameLegal && src.State == analysis.SourceTimedOut {
			legalTimedOut = true
		}
	}
	if legalTimedOut {
		return errors.New(errors.ErrCodeAnalysisTimeout, "analysis timed out before any source completed")
	}
	return errors.New(errors.ErrCodeAllSourcesUnavailable, "no data source produced a result")
}

//Personal.AI order the ending

package api

import (
	"net/http"

	"github.com/okian/draftintel/pkg/logger"
)

// AnalyzeHandler serves the draft analysis report.
type AnalyzeHandler struct {
	analyzer Analyzer
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(analyzer Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

// HandleAnalyze handles GET /api/analyze. Every call runs a fresh analysis;
// any upstream failure answers 500 with {"error": message}.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, NewKind(op, ErrMethodNotAllowed))
		return
	}

	report, err := h.analyzer.Analyze(r.Context())
	if err != nil {
		// the body carries the analyzer's message as is; the log gets the op
		FromContext(r.Context()).Error(r.Context(), "analysis request failed", logger.Error(Wrap(op, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/erazemk/zaloga/internal/report"
)

// ReportsHandler serves computed reports and their JSON exports.
type ReportsHandler struct {
	Reports *report.Generator
}

// Inventory handles GET /api/reports/inventory. With ?download=1 the report
// is served as a pretty-printed JSON attachment.
func (h *ReportsHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Reports.Inventory(r.Context())
	if err != nil {
		storeError(w, err, "failed to generate inventory report")
		return
	}
	h.serve(w, r, report.KindInventory, rep)
}

// Requests handles GET /api/reports/requests. With ?download=1 the report is
// served as a pretty-printed JSON attachment.
func (h *ReportsHandler) Requests(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Reports.Requests(r.Context())
	if err != nil {
		storeError(w, err, "failed to generate requests report")
		return
	}
	h.serve(w, r, report.KindRequests, rep)
}

func (h *ReportsHandler) serve(w http.ResponseWriter, r *http.Request, kind string, rep any) {
	if r.URL.Query().Get("download") == "" {
		jsonResponse(w, http.StatusOK, rep)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(kind, time.Now())))
	if err := report.WriteJSON(w, rep); err != nil {
		slog.Error("failed to write report export", "error", err)
	}
}

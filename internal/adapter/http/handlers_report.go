package adapthttp

import (
	"fmt"
	"net/http"
)

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	doc, err := s.reports.Report(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "bmi_report_"+userID+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

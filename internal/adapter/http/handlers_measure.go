package adapthttp

import (
	"net/http"
)

func (s *Server) handleRunExe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	weight, err := s.measure.Probe(r.Context(), body.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"weightKg": weight})
}

func (s *Server) handleMeasure(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID   string   `json:"userId"`
		HeightCm *float64 `json:"heightCm"`
		// Accepted for wire compatibility with older clients but ignored:
		// the server always performs its own device read.
		WeightKg *float64 `json:"weightKg"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	measurement, updated, err := s.measure.Measure(r.Context(), body.UserID, body.HeightCm)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]any{"measurement": measurement}
	if updated != nil {
		resp["user"] = updated
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMeasurements(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 20)
	items, err := s.measure.History(r.Context(), r.PathValue("userId"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

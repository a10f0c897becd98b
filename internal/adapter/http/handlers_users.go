package adapthttp

import (
	"net/http"

	"bmistation/internal/app"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string   `json:"name"`
		Age      int      `json:"age"`
		Gender   string   `json:"gender"`
		HeightCm float64  `json:"heightCm"`
		WeightKg *float64 `json:"weightKg"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.users.Register(r.Context(), app.RegisterInput{
		Name:     body.Name,
		Age:      body.Age,
		Gender:   body.Gender,
		HeightCm: body.HeightCm,
		WeightKg: body.WeightKg,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

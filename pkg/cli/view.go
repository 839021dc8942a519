package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/jrpbone/Diabetes-Predictor/pkg/data"
	"github.com/jrpbone/Diabetes-Predictor/pkg/predictor"
)

type formView struct {
	Version  string
	Features []string
	Values   map[string]string
	Err      string
	Result   *PredictionResult
}

func homeViewHandler(tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, tmpl, &formView{
			Version:  version,
			Features: predictor.FeatureNames,
			Values:   map[string]string{},
		})
	}
}

// formPredictHandler validates the posted form one field at a time and either
// re-renders the form with the field-specific error or shows the prediction.
func formPredictHandler(tmpl *template.Template, m predictor.Model, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		values := make(map[string]string, predictor.FeatureCount)
		for _, name := range predictor.FeatureNames {
			values[name] = r.PostFormValue(name)
		}

		view := &formView{
			Version:  version,
			Features: predictor.FeatureNames,
			Values:   values,
		}

		x, err := newFormCollector(values).Collect()
		if err != nil {
			view.Err = err.Error()
			render(w, tmpl, view)
			return
		}

		p, err := m.Score(x)
		if err != nil {
			view.Err = err.Error()
			render(w, tmpl, view)
			return
		}

		if _, err := data.SavePrediction(db, x, p); err != nil {
			slog.Warn("failed to record prediction", "error", err)
		}

		view.Result = &PredictionResult{
			Label:      p.Label,
			Likelihood: fmt.Sprintf("%.2f", p.Likelihood),
			Features:   x,
		}
		render(w, tmpl, view)
	}
}

type predictRequest struct {
	Instance string `json:"instance"`
}

func predictAPIHandler(m predictor.Model, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req predictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		x, err := predictor.ParseInstance(req.Instance)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := m.Score(x)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if _, err := data.SavePrediction(db, x, p); err != nil {
			slog.Warn("failed to record prediction", "error", err)
		}

		writeJSON(w, http.StatusOK, &PredictionResult{
			Label:      p.Label,
			Likelihood: fmt.Sprintf("%.2f", p.Likelihood),
			Features:   x,
		})
	}
}

func modelAPIHandler(m predictor.Model) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, m)
	}
}

func render(w http.ResponseWriter, tmpl *template.Template, view *formView) {
	if err := tmpl.ExecuteTemplate(w, "home", view); err != nil {
		slog.Error("template render failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

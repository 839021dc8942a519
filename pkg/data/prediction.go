package data

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/jrpbone/Diabetes-Predictor/pkg/predictor"
)

const (
	insertPrediction = `INSERT INTO prediction (id, created_at, features, label, likelihood)
		VALUES (?, ?, ?, ?, ?)
	`

	selectPredictions = `SELECT id, created_at, features, label, likelihood
		FROM prediction
		ORDER BY created_at DESC
		LIMIT ?
	`
)

// PredictionRecord is one stored scoring outcome.
type PredictionRecord struct {
	ID         string  `json:"id" yaml:"id"`
	CreatedAt  string  `json:"created_at" yaml:"created_at"`
	Features   string  `json:"features" yaml:"features"`
	Label      int     `json:"label" yaml:"label"`
	Likelihood float64 `json:"likelihood" yaml:"likelihood"`
}

// SavePrediction records one scored instance with its outcome.
func SavePrediction(db *sql.DB, x predictor.FeatureVector, p predictor.Prediction) (*PredictionRecord, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	rec := &PredictionRecord{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Features:   joinFeatures(x),
		Label:      p.Label,
		Likelihood: p.Likelihood,
	}

	stmt, err := db.Prepare(insertPrediction)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare prediction insert statement")
	}
	defer stmt.Close()

	if _, err := stmt.Exec(rec.ID, rec.CreatedAt, rec.Features, rec.Label, rec.Likelihood); err != nil {
		return nil, errors.Wrap(err, "failed to insert prediction")
	}

	return rec, nil
}

// ListPredictions returns the most recent prediction records, newest first.
func ListPredictions(db *sql.DB, limit int) ([]*PredictionRecord, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	stmt, err := db.Prepare(selectPredictions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare prediction select statement")
	}
	defer stmt.Close()

	rows, err := stmt.Query(limit)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.Wrap(err, "failed to execute select statement")
	}
	defer rows.Close()

	list := make([]*PredictionRecord, 0)
	for rows.Next() {
		r := &PredictionRecord{}
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Features, &r.Label, &r.Likelihood); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		list = append(list, r)
	}

	return list, nil
}

func joinFeatures(x predictor.FeatureVector) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

package data

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrpbone/Diabetes-Predictor/pkg/predictor"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	err := Init(dbPath)
	require.NoError(t, err)
	db, err := GetDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInit_CreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	err := Init(dbPath)
	require.NoError(t, err)
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestInit_EmptyPath(t *testing.T) {
	err := Init("")
	assert.Error(t, err)
}

func TestInit_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, Init(dbPath))
	assert.NoError(t, Init(dbPath))
}

func TestSaveAndListPredictions(t *testing.T) {
	db := setupTestDB(t)

	x := predictor.FeatureVector{6, 148, 72, 35, 0, 33.6, 0.627, 50}
	p := predictor.Prediction{Label: 1, Likelihood: 73.25, Score: 0.61}

	rec, err := SavePrediction(db, x, p)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "6,148,72,35,0,33.6,0.627,50", rec.Features)

	_, err = SavePrediction(db, x, predictor.Prediction{Label: 0, Likelihood: 12.5})
	require.NoError(t, err)

	list, err := ListPredictions(db, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = ListPredictions(db, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPredictionsNilDB(t *testing.T) {
	_, err := SavePrediction(nil, predictor.FeatureVector{}, predictor.Prediction{})
	assert.Error(t, err)

	_, err = ListPredictions(nil, 10)
	assert.Error(t, err)
}

func TestListPredictionsBadLimit(t *testing.T) {
	db := setupTestDB(t)
	_, err := ListPredictions(db, 0)
	assert.Error(t, err)
}

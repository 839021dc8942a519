package predictor

import (
	"bufio"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// FeatureCount is the fixed width of every row and instance.
	FeatureCount = 8

	fieldDelimiter = ","
)

// FeatureNames lists the dataset columns in their fixed order. Row and
// instance values are positional against this list.
var FeatureNames = []string{
	"Pregnancies",
	"Glucose",
	"BloodPressure",
	"SkinThickness",
	"Insulin",
	"BMI",
	"DiabetesPedigreeFunction",
	"Age",
}

var (
	// ErrInvalidInstance indicates an instance without exactly FeatureCount numeric values.
	ErrInvalidInstance = errors.New("instance must contain exactly 8 numeric values")

	// ErrNoData indicates the dataset yielded no usable rows, so no model can be built.
	ErrNoData = errors.New("dataset contains no usable rows")
)

// FeatureVector is one ordered record of the 8 feature values.
type FeatureVector []float64

// Dataset is the ordered collection of rows from a single load.
type Dataset []FeatureVector

// ParseRow converts one line of text into a feature vector. Fields are split
// on comma, non-numeric fields are skipped without error, and scanning stops
// once FeatureCount values have been collected. The line is accepted only if
// exactly FeatureCount numeric values were found.
func ParseRow(line string) (FeatureVector, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}

	row := make(FeatureVector, 0, FeatureCount)
	for _, field := range strings.Split(line, fieldDelimiter) {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			continue
		}
		row = append(row, v)
		if len(row) == FeatureCount {
			break
		}
	}

	if len(row) != FeatureCount {
		return nil, false
	}
	return row, true
}

// ReadDataset reads all valid rows from the file at path. Any failure to open
// or read the source yields an empty Dataset so the caller degrades to
// "no model" instead of failing.
func ReadDataset(path string) Dataset {
	f, err := os.Open(path)
	if err != nil {
		slog.Debug("dataset not readable", "path", path, "error", err)
		return Dataset{}
	}
	defer f.Close()

	ds := make(Dataset, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if row, ok := ParseRow(scanner.Text()); ok {
			ds = append(ds, row)
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Debug("dataset read failed", "path", path, "error", err)
		return Dataset{}
	}
	return ds
}

// ParseInstance parses a single comma or whitespace separated line into a
// feature vector, taking the first FeatureCount numeric tokens in order.
// Lines with fewer numeric tokens are rejected with ErrInvalidInstance.
func ParseInstance(line string) (FeatureVector, error) {
	line = strings.TrimSpace(strings.ReplaceAll(line, fieldDelimiter, " "))
	if line == "" {
		return nil, errors.Wrap(ErrInvalidInstance, "empty input")
	}

	vals := make(FeatureVector, 0, FeatureCount)
	for _, tok := range strings.Fields(line) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
		if len(vals) == FeatureCount {
			break
		}
	}

	if len(vals) != FeatureCount {
		return nil, errors.Wrapf(ErrInvalidInstance, "parsed %d of %d values", len(vals), FeatureCount)
	}
	return vals, nil
}

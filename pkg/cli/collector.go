package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jrpbone/Diabetes-Predictor/pkg/predictor"
)

// Collector gathers one instance from the user. Two implementations exist:
// the blocking line collector for the terminal and the form collector backing
// the HTTP front end.
type Collector interface {
	Collect() (predictor.FeatureVector, error)
}

type lineCollector struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

func newLineCollector(in *os.File, out io.Writer) *lineCollector {
	interactive := false
	if fi, err := in.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
		interactive = true
	}
	return &lineCollector{in: in, out: out, interactive: interactive}
}

// Collect reads the instance from the input stream. On a terminal it prompts
// for each feature by name and rejects empty or non-numeric entries with a
// field-specific error. With piped input it expects a single comma or
// whitespace separated line.
func (l *lineCollector) Collect() (predictor.FeatureVector, error) {
	scanner := bufio.NewScanner(l.in)

	if !l.interactive {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrap(err, "failed to read instance line")
			}
			return nil, errors.Wrap(predictor.ErrInvalidInstance, "no input")
		}
		return predictor.ParseInstance(scanner.Text())
	}

	vals := make(predictor.FeatureVector, 0, predictor.FeatureCount)
	for _, name := range predictor.FeatureNames {
		fmt.Fprintf(l.out, "%s: ", name)
		if !scanner.Scan() {
			return nil, errors.Wrapf(predictor.ErrInvalidInstance, "%s is required", name)
		}
		v, err := parseFeatureField(name, scanner.Text())
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

type formCollector struct {
	values map[string]string
}

func newFormCollector(values map[string]string) *formCollector {
	return &formCollector{values: values}
}

// Collect validates one labeled value per feature, rejecting empty or
// non-numeric entries with an error naming the offending field.
func (f *formCollector) Collect() (predictor.FeatureVector, error) {
	vals := make(predictor.FeatureVector, 0, predictor.FeatureCount)
	for _, name := range predictor.FeatureNames {
		v, err := parseFeatureField(name, f.values[name])
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseFeatureField(name, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.Wrapf(predictor.ErrInvalidInstance, "%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(predictor.ErrInvalidInstance, "%s must be numeric", name)
	}
	return v, nil
}

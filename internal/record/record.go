package record

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"retro-power/internal/stats"
)

//go:embed metrics.json
var metricsJSON []byte

// ErrInvalidMetric is returned when a metric entry fails validation.
var ErrInvalidMetric = errors.New("invalid metric")

// MetricJSON is one entry of the metrics table as reported in the source study.
type MetricJSON struct {
	Name    string  `json:"name"`
	Delta   float64 `json:"delta"` // mutant - normal
	PValue  float64 `json:"p_value"`
	NNormal int     `json:"n_normal"`
	NMutant int     `json:"n_mutant"`
	DF      int     `json:"df"`
}

// Metric is a validated metric with its critical t resolved from the
// reported p-value and degrees of freedom.
type Metric struct {
	Name      string
	Delta     float64
	PValue    float64
	NNormal   int
	NMutant   int
	DF        int
	CriticalT float64
}

// NEach is the per-group size used for the pooled SD. Groups are assumed equal.
func (m Metric) NEach() int {
	return m.NNormal
}

// Default returns the embedded metrics table.
func Default() ([]Metric, error) {
	return Load(bytes.NewReader(metricsJSON))
}

// Load decodes a JSON array of metrics, validates each entry and computes
// its critical t.
func Load(r io.Reader) ([]Metric, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var entries []MetricJSON
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse metrics JSON: %w", err)
	}

	metrics := make([]Metric, 0, len(entries))
	for i, e := range entries {
		m, err := newMetric(e)
		if err != nil {
			return nil, fmt.Errorf("metric %d (%q): %w", i, e.Name, err)
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}

func newMetric(e MetricJSON) (Metric, error) {
	if err := validate(e); err != nil {
		return Metric{}, err
	}

	tCrit, err := stats.TCritical(e.PValue, e.DF)
	if err != nil {
		return Metric{}, fmt.Errorf("critical t: %w", err)
	}

	return Metric{
		Name:      e.Name,
		Delta:     e.Delta,
		PValue:    e.PValue,
		NNormal:   e.NNormal,
		NMutant:   e.NMutant,
		DF:        e.DF,
		CriticalT: tCrit,
	}, nil
}

func validate(e MetricJSON) error {
	switch {
	case strings.TrimSpace(e.Name) == "":
		return fmt.Errorf("%w: name required", ErrInvalidMetric)
	case e.Delta == 0:
		return fmt.Errorf("%w: delta must be nonzero", ErrInvalidMetric)
	case !(e.PValue > 0 && e.PValue < 1):
		return fmt.Errorf("%w: p_value %g outside (0, 1)", ErrInvalidMetric, e.PValue)
	case e.NNormal <= 0 || e.NMutant <= 0:
		return fmt.Errorf("%w: group sizes must be positive", ErrInvalidMetric)
	case e.DF <= 0:
		return fmt.Errorf("%w: df must be positive", ErrInvalidMetric)
	}
	return nil
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"retro-power/internal/record"
	"retro-power/internal/stats"
)

// Row is the computed power analysis for one metric.
type Row struct {
	Metric      record.Metric
	PooledSD    float64
	SampleSizes []int // one per stats.Powers entry
}

// Build computes pooled SD and required sample sizes for every metric.
// The first failure aborts the build.
func Build(metrics []record.Metric) ([]Row, error) {
	rows := make([]Row, 0, len(metrics))
	for _, m := range metrics {
		row, err := buildRow(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Name, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func buildRow(m record.Metric) (Row, error) {
	sigma, err := stats.PooledSD(m.Delta, m.CriticalT, m.NEach())
	if err != nil {
		return Row{}, fmt.Errorf("pooled SD: %w", err)
	}

	sizes := make([]int, 0, len(stats.Powers))
	for _, p := range stats.Powers {
		n, err := stats.RequiredSampleSize(m.Delta, sigma, p)
		if err != nil {
			return Row{}, fmt.Errorf("sample size at %s: %w", p, err)
		}
		sizes = append(sizes, n)
	}

	return Row{Metric: m, PooledSD: sigma, SampleSizes: sizes}, nil
}

// Header returns the column header line.
func Header() string {
	labels := make([]string, 0, len(stats.Powers))
	for _, p := range stats.Powers {
		labels = append(labels, "n@"+p.String())
	}
	return fmt.Sprintf("%-25s %7s %7s %9s %9s %9s %10s   %s",
		"Metric", "Delta", "p", "n_normal", "n_mutant", "t_exact", "PooledSD",
		strings.Join(labels, "  "))
}

// FormatRow renders one row aligned under Header.
func FormatRow(r Row) string {
	sizes := make([]string, 0, len(r.SampleSizes))
	for _, n := range r.SampleSizes {
		sizes = append(sizes, fmt.Sprintf("%3d", n))
	}
	m := r.Metric
	return fmt.Sprintf("%-25s %7.1f %7g %9d %9d %9.2f %10.2f   %s",
		m.Name, m.Delta, m.PValue, m.NNormal, m.NMutant, m.CriticalT, r.PooledSD,
		strings.Join(sizes, "  "))
}

// Write prints the header, a dash separator of the same width, and one line
// per row.
func Write(w io.Writer, rows []Row) error {
	cyan := color.New(color.FgCyan)
	dim := color.New(color.Faint)

	header := Header()
	if _, err := cyan.Fprintln(w, header); err != nil {
		return err
	}
	if _, err := dim.Fprintln(w, strings.Repeat("-", len(header))); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, FormatRow(r)); err != nil {
			return err
		}
	}
	return nil
}

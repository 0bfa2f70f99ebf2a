package variance

import (
	"github.com/montanaflynn/stats"
)

// GroupSummary describes one sample group: the descriptive companion a
// variance-homogeneity check is reported alongside.
type GroupSummary struct {
	Size     int
	Mean     float64
	Variance float64
	StdDev   float64
}

// Summarize computes the size, mean, Bessel-corrected variance and
// standard deviation of a sample group. Empty input is rejected.
func Summarize(group []float64) (GroupSummary, error) {
	mean, err := stats.Mean(group)
	if err != nil {
		return GroupSummary{}, err
	}

	variance, err := stats.SampleVariance(group)
	if err != nil {
		return GroupSummary{}, err
	}

	stdDev, err := stats.StandardDeviationSample(group)
	if err != nil {
		return GroupSummary{}, err
	}

	return GroupSummary{
		Size:     len(group),
		Mean:     mean,
		Variance: variance,
		StdDev:   stdDev,
	}, nil
}

// SummarizeGroups summarizes each group in turn, preserving order.
func SummarizeGroups(groups ...[]float64) ([]GroupSummary, error) {
	summaries := make([]GroupSummary, 0, len(groups))
	for _, group := range groups {
		summary, err := Summarize(group)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

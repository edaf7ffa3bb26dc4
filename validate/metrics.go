package validate

import "github.com/c360studio/ontograph/ontology"

// ComputeMetrics derives the four aggregate quality scores from the
// snapshot and the merged issue counts. Every score is clamped to [0,1];
// an empty store scores vacuously perfect rather than dividing by zero.
func ComputeMetrics(snap *ontology.Snapshot, errors, warnings int) Metrics {
	classCount := len(snap.Classes)
	if classCount == 0 {
		return Metrics{Consistency: 1, Completeness: 1, Clarity: 1, Coverage: 1}
	}

	// Consistency degrades with findings; errors weigh five times warnings.
	penalty := float64(errors)*0.1 + float64(warnings)*0.02
	consistency := clamp01(1 - penalty)

	// Completeness is the instance coverage ratio.
	withInstances := 0
	withDescriptions := 0
	for _, c := range snap.Classes {
		if len(c.Instances) > 0 {
			withInstances++
		}
		if c.Description != "" {
			withDescriptions++
		}
	}
	completeness := float64(withInstances) / float64(classCount)

	// Clarity is the fraction of described classes.
	clarity := float64(withDescriptions) / float64(classCount)

	// Coverage compares relationship count against a conservative
	// expected-edge-count heuristic.
	coverage := 1.0
	expected := float64(classCount*(classCount-1)) / 10.0
	if expected > 0 {
		coverage = clamp01(float64(len(snap.Relationships)) / expected)
	}

	return Metrics{
		Consistency:  consistency,
		Completeness: clamp01(completeness),
		Clarity:      clamp01(clarity),
		Coverage:     coverage,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

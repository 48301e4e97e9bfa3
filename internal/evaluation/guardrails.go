package evaluation

import "fmt"

// GuardrailConfig sets the minimum acceptable quality for a search build.
// Zero values disable the corresponding check.
type GuardrailConfig struct {
	MinAvgRecallAt10 float64
	MinAvgMRRAt10    float64
	MinHitRate       float64
}

// Guardrails judges an evaluation summary against quality floors.
type Guardrails struct {
	config GuardrailConfig
}

func NewGuardrails(config GuardrailConfig) *Guardrails {
	return &Guardrails{config: config}
}

// Check returns one violation message per quality floor the summary falls
// below. An empty slice means the build passes.
func (g *Guardrails) Check(s *EvalSummary) []string {
	var violations []string

	if g.config.MinAvgRecallAt10 > 0 && s.AvgRecallAt10 < g.config.MinAvgRecallAt10 {
		violations = append(violations, fmt.Sprintf(
			"avg recall@10 %.3f below floor %.3f", s.AvgRecallAt10, g.config.MinAvgRecallAt10))
	}
	if g.config.MinAvgMRRAt10 > 0 && s.AvgMRRAt10 < g.config.MinAvgMRRAt10 {
		violations = append(violations, fmt.Sprintf(
			"avg mrr@10 %.3f below floor %.3f", s.AvgMRRAt10, g.config.MinAvgMRRAt10))
	}
	if g.config.MinHitRate > 0 && s.TotalQueries > 0 {
		hitRate := float64(s.QueriesWithHits) / float64(s.TotalQueries)
		if hitRate < g.config.MinHitRate {
			violations = append(violations, fmt.Sprintf(
				"hit rate %.3f below floor %.3f", hitRate, g.config.MinHitRate))
		}
	}

	return violations
}

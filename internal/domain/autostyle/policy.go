package autostyle

import "strings"

// ScoringPolicy holds the weights and thresholds of the auto heuristic.
type ScoringPolicy struct {
	BackgroundWeight float64
	RadiusWeight     float64
	MarginWeight     float64
	PaddingWeight    float64
	// PaddingThreshold is the summed padding above which padding is zeroed.
	// Any non-zero padding still scores PaddingWeight.
	PaddingThreshold float64
	MinElementSize   float64
	// ViewportSlack scales the viewport for the visibility filter.
	ViewportSlack float64
	AreaBase      float64
	AlphaEpsilon  float64
	DefaultLimit  int
	MaxLimit      int
	CandidateTags []string
}

// DefaultScoringPolicy returns the stock weights.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		BackgroundWeight: 3,
		RadiusWeight:     1.5,
		MarginWeight:     1,
		PaddingWeight:    0.5,
		PaddingThreshold: 16,
		MinElementSize:   16,
		ViewportSlack:    2,
		AreaBase:         0.5,
		AlphaEpsilon:     0.01,
		DefaultLimit:     8,
		MaxLimit:         12,
		CandidateTags:    []string{"div", "section", "main", "header", "footer", "aside", "article"},
	}
}

// Limit clamps the requested candidate count to [1, MaxLimit],
// using DefaultLimit when limit is nil.
func (p ScoringPolicy) Limit(limit *int) int {
	n := p.DefaultLimit
	if limit != nil {
		n = *limit
	}
	if n > p.MaxLimit {
		n = p.MaxLimit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// CandidateSelector returns the selector list matching candidate tags.
func (p ScoringPolicy) CandidateSelector() string {
	return strings.Join(p.CandidateTags, ", ")
}

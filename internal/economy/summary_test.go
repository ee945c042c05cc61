package economy

import (
	"math"
	"testing"
)

func TestSummarizeEqual(t *testing.T) {
	capital := []float64{10, 10, 10, 10}
	s := Summarize(capital, []float64{0.1, 0.2, 0.3, 0.4})

	if s.Gini != 0 {
		t.Errorf("Gini = %v, want 0", s.Gini)
	}
	if s.Mean != 10 || s.Median != 10 || s.Min != 10 || s.Max != 10 {
		t.Errorf("unexpected summary %+v", s)
	}
	if s.TalentCorr != 0 {
		t.Errorf("TalentCorr = %v, want 0 for constant capital", s.TalentCorr)
	}
}

func TestSummarizeConcentrated(t *testing.T) {
	// One individual holds everything.
	capital := make([]float64, 10)
	capital[7] = 100
	talent := make([]float64, 10)
	talent[7] = 0.2
	talent[3] = 0.9

	s := Summarize(capital, talent)
	if math.Abs(s.Gini-0.9) > 1e-12 {
		t.Errorf("Gini = %v, want 0.9", s.Gini)
	}
	if s.Richest != 7 || s.RichestTalent != 0.2 || s.MaxTalent != 0.9 {
		t.Errorf("richest = %d (talent %v, max %v)", s.Richest, s.RichestTalent, s.MaxTalent)
	}
	if s.TopDecile != 1 {
		t.Errorf("TopDecile = %v, want 1", s.TopDecile)
	}
	if s.Total != 100 || s.Median != 0 {
		t.Errorf("Total = %v, Median = %v", s.Total, s.Median)
	}
}

func TestSummarizeCorrelation(t *testing.T) {
	talent := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	capital := []float64{1, 2, 3, 4, 5}
	s := Summarize(capital, talent)
	if math.Abs(s.TalentCorr-1) > 1e-9 {
		t.Errorf("TalentCorr = %v, want 1", s.TalentCorr)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil, nil); s.Population != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestSummarizeDoesNotReorderInput(t *testing.T) {
	capital := []float64{3, 1, 2}
	Summarize(capital, nil)
	if capital[0] != 3 || capital[1] != 1 || capital[2] != 2 {
		t.Errorf("input reordered: %v", capital)
	}
}

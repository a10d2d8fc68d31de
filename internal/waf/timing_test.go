package waf

import "testing"

func TestBaselineComparison_WithinWindowEmitsEvidence(t *testing.T) {
	baseline := []float64{50, 50, 50}
	suspicious := []float64{150, 150, 150}
	ev, ok := baselineComparison(baseline, suspicious)
	if !ok {
		t.Fatal("expected evidence for a 100ms delta within [50,200]")
	}
	if ev.Method != MethodTiming {
		t.Errorf("Method = %v, want MethodTiming", ev.Method)
	}
	if ev.MethodDetail != "" && ev.MethodDetail == "CloudFlare" {
		t.Error("timing evidence must never name a vendor")
	}
	if ev.Confidence <= 0 || ev.Confidence > 0.95 {
		t.Errorf("confidence = %v, want in (0, 0.95]", ev.Confidence)
	}
}

func TestBaselineComparison_DeltaBelowFloorNoEvidence(t *testing.T) {
	baseline := []float64{50, 50, 50}
	suspicious := []float64{99, 99, 99} // delta = 49, just under the 50ms floor
	if _, ok := baselineComparison(baseline, suspicious); ok {
		t.Error("a 49ms delta must not emit evidence")
	}
}

func TestBaselineComparison_DeltaAtFloorEmitsEvidence(t *testing.T) {
	baseline := []float64{50, 50, 50}
	suspicious := []float64{100, 100, 100} // delta = 50, exactly the floor
	if _, ok := baselineComparison(baseline, suspicious); !ok {
		t.Error("a 50ms delta (the inclusive floor) should emit evidence")
	}
}

func TestBaselineComparison_DeltaAboveCeilingNoEvidence(t *testing.T) {
	baseline := []float64{50, 50, 50}
	suspicious := []float64{300, 300, 300} // delta = 250, above the 200ms ceiling
	if _, ok := baselineComparison(baseline, suspicious); ok {
		t.Error("a 250ms delta must not emit evidence")
	}
}

func TestBaselineComparison_ConfidenceNeverExceedsCap(t *testing.T) {
	baseline := []float64{50, 50, 50}
	suspicious := []float64{250, 250, 250} // delta = 200, max normalised delay, zero variance
	ev, ok := baselineComparison(baseline, suspicious)
	if !ok {
		t.Fatal("expected evidence")
	}
	if ev.Confidence > 0.95 {
		t.Errorf("confidence = %v, want <= 0.95", ev.Confidence)
	}
}

func TestPatternAnalysis_ConsistentLowVarianceEmitsEvidence(t *testing.T) {
	samples := []float64{100, 102, 98, 101, 99}
	ev, ok := patternAnalysis(samples)
	if !ok {
		t.Fatal("expected evidence for a consistent, low-variance sample")
	}
	if ev.Confidence > 0.90 {
		t.Errorf("confidence = %v, want <= 0.90", ev.Confidence)
	}
}

func TestPatternAnalysis_HighVarianceNoEvidence(t *testing.T) {
	samples := []float64{50, 500, 120, 900, 60}
	if _, ok := patternAnalysis(samples); ok {
		t.Error("a high-variance sample must not emit evidence")
	}
}

func TestPatternAnalysis_MeanOutsideWindowNoEvidence(t *testing.T) {
	samples := []float64{2000, 2001, 1999}
	if _, ok := patternAnalysis(samples); ok {
		t.Error("a mean above 1000ms must not emit evidence")
	}
}

func TestCoefficientOfVariation_ZeroMeanIsZero(t *testing.T) {
	if cv := coefficientOfVariation([]float64{0, 0, 0}); cv != 0 {
		t.Errorf("cv = %v, want 0", cv)
	}
}

func TestCoefficientOfVariation_SingleSampleIsZero(t *testing.T) {
	if cv := coefficientOfVariation([]float64{123}); cv != 0 {
		t.Errorf("cv = %v, want 0", cv)
	}
}

func TestMean(t *testing.T) {
	if m := mean([]float64{10, 20, 30}); m != 20 {
		t.Errorf("mean = %v, want 20", m)
	}
}

// Evidence.MethodDetail must distinguish the two techniques but never carry
// a vendor name, since timing alone can't attribute a specific provider.
func TestTimingEvidence_MethodDetailNamesTechniqueNotVendor(t *testing.T) {
	ev, ok := baselineComparison([]float64{50, 50, 50}, []float64{150, 150, 150})
	if !ok {
		t.Fatal("expected evidence")
	}
	if ev.MethodDetail != "baseline_comparison" {
		t.Errorf("MethodDetail = %q, want baseline_comparison", ev.MethodDetail)
	}

	ev2, ok := patternAnalysis([]float64{100, 101, 99, 100, 100})
	if !ok {
		t.Fatal("expected evidence")
	}
	if ev2.MethodDetail != "pattern_analysis" {
		t.Errorf("MethodDetail = %q, want pattern_analysis", ev2.MethodDetail)
	}
}

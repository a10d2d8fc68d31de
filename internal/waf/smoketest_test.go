package waf

import "testing"

func blockedResult() PayloadResult {
	return PayloadResult{Classification: ClassificationBlocked, ResponseTimeMS: 10}
}

func allowedResult() PayloadResult {
	return PayloadResult{Classification: ClassificationAllowed, ResponseTimeMS: 10}
}

func TestSummarize_EmptyResults(t *testing.T) {
	s := summarize(nil)
	if s.Total != 0 || s.EffectivenessPct != 0 {
		t.Errorf("summarize(nil) = %+v, want zero value", s)
	}
}

func TestSummarize_EffectivenessCountsBlockedRateLimitedChallenge(t *testing.T) {
	results := []PayloadResult{
		blockedResult(),
		{Classification: ClassificationRateLimited},
		{Classification: ClassificationChallenge},
		allowedResult(),
	}
	s := summarize(results)
	if s.EffectivenessPct != 75.0 {
		t.Errorf("EffectivenessPct = %v, want 75", s.EffectivenessPct)
	}
}

// Seed scenario 5 (spec.md §8): a smoke test with every payload blocked is
// reported as Blocking mode.
func TestInferWafMode_AllBlockedIsBlocking(t *testing.T) {
	results := make([]PayloadResult, 10)
	for i := range results {
		results[i] = blockedResult()
	}
	summary := summarize(results)
	if mode := inferWafMode(summary, results); mode != WafModeBlocking {
		t.Errorf("mode = %v, want blocking", mode)
	}
}

func TestInferWafMode_ZeroTotalIsUnknown(t *testing.T) {
	if mode := inferWafMode(SmokeTestSummary{}, nil); mode != WafModeUnknown {
		t.Errorf("mode = %v, want unknown", mode)
	}
}

func TestInferWafMode_HighEffectivenessIsBlocking(t *testing.T) {
	results := []PayloadResult{blockedResult(), blockedResult(), blockedResult(), blockedResult(), allowedResult()}
	summary := summarize(results)
	if mode := inferWafMode(summary, results); mode != WafModeBlocking {
		t.Errorf("mode = %v (effectiveness %v), want blocking", mode, summary.EffectivenessPct)
	}
}

func TestInferWafMode_MidRangeIsMixed(t *testing.T) {
	results := []PayloadResult{blockedResult(), allowedResult(), allowedResult()}
	summary := summarize(results) // effectiveness = 33.3%
	if mode := inferWafMode(summary, results); mode != WafModeMixed {
		t.Errorf("mode = %v (effectiveness %v), want mixed", mode, summary.EffectivenessPct)
	}
}

func TestInferWafMode_LowNonZeroIsMixed(t *testing.T) {
	results := make([]PayloadResult, 20)
	results[0] = blockedResult()
	for i := 1; i < 20; i++ {
		results[i] = allowedResult()
	}
	summary := summarize(results) // effectiveness = 5%
	if mode := inferWafMode(summary, results); mode != WafModeMixed {
		t.Errorf("mode = %v (effectiveness %v), want mixed", mode, summary.EffectivenessPct)
	}
}

func TestInferWafMode_ZeroWithReflectionIsMonitoring(t *testing.T) {
	results := []PayloadResult{
		{Classification: ClassificationAllowed, Evidence: []string{"payload reflected"}},
		allowedResult(),
	}
	summary := summarize(results)
	if mode := inferWafMode(summary, results); mode != WafModeMonitoring {
		t.Errorf("mode = %v, want monitoring", mode)
	}
}

func TestInferWafMode_ZeroWithNoReflectionIsUnknown(t *testing.T) {
	results := []PayloadResult{allowedResult(), allowedResult()}
	summary := summarize(results)
	if mode := inferWafMode(summary, results); mode != WafModeUnknown {
		t.Errorf("mode = %v, want unknown", mode)
	}
}

func TestMajorityVendor_PicksHighestCount(t *testing.T) {
	results := []PayloadResult{
		{WAFHints: []string{"CloudFlare"}},
		{WAFHints: []string{"CloudFlare", "Akamai"}},
		{WAFHints: []string{"CloudFlare"}},
	}
	if v := majorityVendor(results); v != "CloudFlare" {
		t.Errorf("majorityVendor = %q, want CloudFlare", v)
	}
}

func TestMajorityVendor_EmptyWhenNoHints(t *testing.T) {
	results := []PayloadResult{allowedResult(), blockedResult()}
	if v := majorityVendor(results); v != "" {
		t.Errorf("majorityVendor = %q, want empty", v)
	}
}

func TestRecommendations_NoPayloadsProbed(t *testing.T) {
	recs := recommendations(SmokeTestSummary{Total: 0})
	if len(recs) == 0 {
		t.Fatal("expected a recommendation for zero probes")
	}
}

func TestRecommendations_ErrorCountAddsCaveat(t *testing.T) {
	recs := recommendations(SmokeTestSummary{Total: 5, EffectivenessPct: 100, ErrorCount: 2})
	found := false
	for _, r := range recs {
		if r == "some probes errored; results may undercount real protection" {
			found = true
		}
	}
	if !found {
		t.Error("expected an error-count caveat recommendation")
	}
}

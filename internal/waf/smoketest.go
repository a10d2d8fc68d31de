package waf

import "context"

// blockingEffectivenessFloor and mixedFloor bound the effectiveness
// percentage bands that decide the inferred WafMode (spec.md §4.8): at or
// above the blocking floor the origin is actively blocking; between the
// mixed floor and the blocking floor it's a mix of enforcing and
// detect-only rules, common during a WAF rollout, and any nonzero rate below
// the mixed floor is reported as mixed too; at exactly zero with
// reflected-payload evidence it's passively monitoring.
const (
	blockingEffectivenessFloor = 80.0
	mixedFloor                 = 30.0
)

// SmokeTest is the C9 Smoke-Test Reporter: it drives the Payload Prober
// against a target and summarizes how effectively the origin's WAF (if any)
// blocked the attack catalogue.
type SmokeTest struct {
	prober *PayloadProber
}

// NewSmokeTest builds a SmokeTest around the given PayloadProber.
func NewSmokeTest(prober *PayloadProber) *SmokeTest {
	return &SmokeTest{prober: prober}
}

// Run fires the full payload catalogue at targetURL and returns a
// SmokeTestResult summarizing effectiveness and inferred WAF mode. A
// cancelled ctx abandons any outstanding probes and the partial results are
// summarized as-is.
func (s *SmokeTest) Run(ctx context.Context, targetURL string) SmokeTestResult {
	results := s.prober.Probe(ctx, targetURL)
	summary := summarize(results)
	return SmokeTestResult{
		URL:              targetURL,
		Results:          results,
		Summary:          summary,
		WafMode:          inferWafMode(summary, results),
		IdentifiedVendor: majorityVendor(results),
		Recommendations:  recommendations(summary),
	}
}

func summarize(results []PayloadResult) SmokeTestSummary {
	summary := SmokeTestSummary{Total: len(results)}
	if len(results) == 0 {
		return summary
	}
	var totalTimeMS int64
	for _, r := range results {
		totalTimeMS += r.ResponseTimeMS
		switch r.Classification {
		case ClassificationBlocked:
			summary.BlockedCount++
		case ClassificationAllowed:
			summary.AllowedCount++
		case ClassificationError:
			summary.ErrorCount++
		case ClassificationRateLimited:
			summary.RateLimitedCount++
		case ClassificationChallenge:
			summary.ChallengeCount++
		}
	}
	// Blocked, rate-limited, and challenge responses all represent the
	// origin actively intervening on the attack payload — effectiveness
	// counts all three as "protected".
	protected := summary.BlockedCount + summary.RateLimitedCount + summary.ChallengeCount
	summary.EffectivenessPct = 100 * float64(protected) / float64(summary.Total)
	summary.MeanResponseTimeMS = float64(totalTimeMS) / float64(summary.Total)
	return summary
}

// inferWafMode follows spec.md §4.8's block-rate thresholds exactly: the
// rate is the effectiveness fraction (Blocked+RateLimited+Challenge/total).
func inferWafMode(summary SmokeTestSummary, results []PayloadResult) WafMode {
	if summary.Total == 0 {
		return WafModeUnknown
	}
	rate := summary.EffectivenessPct
	switch {
	case rate >= blockingEffectivenessFloor:
		return WafModeBlocking
	case rate >= mixedFloor:
		return WafModeMixed
	case rate > 0:
		return WafModeMixed
	case anyReflected(results):
		return WafModeMonitoring
	default:
		return WafModeUnknown
	}
}

func anyReflected(results []PayloadResult) bool {
	for _, r := range results {
		for _, obs := range r.Evidence {
			if obs == "payload reflected" {
				return true
			}
		}
	}
	return false
}

// majorityVendor returns the vendor name implicated by the most
// PayloadResult.WAFHints entries across every probe, or "" if no payload
// result carried a hint.
func majorityVendor(results []PayloadResult) string {
	counts := make(map[string]int)
	for _, r := range results {
		for _, hint := range r.WAFHints {
			counts[hint]++
		}
	}
	best := ""
	bestCount := 0
	for vendor, count := range counts {
		if count > bestCount {
			best = vendor
			bestCount = count
		}
	}
	return best
}

func recommendations(summary SmokeTestSummary) []string {
	var recs []string
	switch {
	case summary.Total == 0:
		recs = append(recs, "no payloads were probed; check target reachability")
	case summary.EffectivenessPct >= blockingEffectivenessFloor:
		recs = append(recs, "WAF appears to be actively blocking attack traffic; no action needed")
	case summary.EffectivenessPct == 0:
		recs = append(recs, "WAF (if present) is not blocking attack payloads; verify it is in blocking mode rather than monitor-only")
	default:
		recs = append(recs, "WAF is blocking some but not all attack categories; review rule coverage for the allowed categories")
	}
	if summary.ErrorCount > 0 {
		recs = append(recs, "some probes errored; results may undercount real protection")
	}
	return recs
}

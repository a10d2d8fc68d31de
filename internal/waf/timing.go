package waf

import (
	"context"
	"math"
	"time"
)

// timingSamples is how many baseline + suspicious requests each technique
// takes; more samples reduce noise from one-off network jitter but cost
// wall-clock time, so this stays small (spec.md §4.4 default: 3).
const timingSamples = 3

// minDelayMS and maxDelayMS bound the baseline-comparison delay window
// (spec.md §4.4 defaults: 50-200ms) — a delta outside this window reads as
// either noise or an unrelated slow origin, not WAF rule-engine overhead.
const (
	minDelayMS = 50.0
	maxDelayMS = 200.0
	// patternMaxMeanMS bounds the pattern-analysis technique's absolute mean
	// (spec.md §4.4: mean in [min_delay, 1000ms]).
	patternMaxMeanMS = 1000.0
	patternMaxCV     = 0.3
)

// suspiciousHeaderSets rotates through small set of suspicious request
// shapes (known-scanner UA, spoofed forwarding headers) used for the
// baseline-comparison technique's "test" group.
var suspiciousHeaderSets = []map[string]string{
	{"User-Agent": "sqlmap/1.7.2"},
	{"X-Forwarded-For": "1.1.1.1"},
	{"X-Real-IP": "127.0.0.1"},
}

// interRequestDelay is inserted between every timing probe to avoid
// triggering the origin's own rate limiting (spec.md §4.4: >= 100ms).
const interRequestDelay = 100 * time.Millisecond

// TimingAnalyser is the C5 component: it compares response latency for a
// benign request against a request carrying suspicious headers, and
// separately checks a baseline+test sample's coefficient of variation, to
// infer WAF rule-engine processing overhead. Timing Evidence is always
// attributed to the synthetic TimingAnalysis source, never to a specific
// vendor — spec.md is explicit that timing alone can't identify one.
type TimingAnalyser struct {
	prober *Prober
}

// NewTimingAnalyser builds a TimingAnalyser around the given Prober.
func NewTimingAnalyser(prober *Prober) *TimingAnalyser {
	return &TimingAnalyser{prober: prober}
}

// Analyse runs both timing techniques and returns at most two Evidence
// items (one per technique); either or both may be absent. It returns
// promptly once ctx is cancelled, abandoning any remaining samples rather
// than running the full set (spec.md §5).
func (t *TimingAnalyser) Analyse(ctx context.Context, targetURL string) []Evidence {
	baseline := t.timeBaseline(ctx, targetURL)
	if ctx.Err() != nil || len(baseline) == 0 {
		return nil
	}
	suspicious := t.timeSuspicious(ctx, targetURL)
	if ctx.Err() != nil || len(suspicious) == 0 {
		return nil
	}

	var evidence []Evidence
	if ev, ok := baselineComparison(baseline, suspicious); ok {
		evidence = append(evidence, ev)
	}
	if ev, ok := patternAnalysis(append(append([]float64{}, baseline...), suspicious...)); ok {
		evidence = append(evidence, ev)
	}
	return evidence
}

// baselineComparison implements spec.md §4.4's first technique: if the
// suspicious-minus-baseline delta falls in [minDelayMS, maxDelayMS], emit
// Evidence with confidence 0.7*normalised_delay + 0.3*(1-variance), capped
// at 0.95.
func baselineComparison(baseline, suspicious []float64) (Evidence, bool) {
	baseMean := mean(baseline)
	susMean := mean(suspicious)
	delta := susMean - baseMean
	if delta < minDelayMS || delta > maxDelayMS {
		return Evidence{}, false
	}

	normalisedDelay := (delta - minDelayMS) / (maxDelayMS - minDelayMS)
	variance := coefficientOfVariation(suspicious)
	confidence := 0.7*normalisedDelay + 0.3*(1-variance)
	if confidence > 0.95 {
		confidence = 0.95
	}
	if confidence < 0 {
		confidence = 0
	}
	return Evidence{
		Method:       MethodTiming,
		MethodDetail: "baseline_comparison",
		Confidence:   confidence,
		Description:  "suspicious-header requests consistently slower than baseline by a WAF-scale delta",
		RawData:      formatDeltaMS(delta),
		SignatureID:  "timing-baseline-delta",
	}, true
}

// patternAnalysis implements spec.md §4.4's second technique: across the
// combined baseline+test sample, if the mean falls in [minDelayMS, 1000ms]
// and the coefficient of variation is below 0.3, emit Evidence capped at
// 0.90.
func patternAnalysis(samples []float64) (Evidence, bool) {
	m := mean(samples)
	cv := coefficientOfVariation(samples)
	if m < minDelayMS || m > patternMaxMeanMS || cv >= patternMaxCV {
		return Evidence{}, false
	}
	confidence := math.Min(0.90, 1-cv)
	return Evidence{
		Method:       MethodTiming,
		MethodDetail: "pattern_analysis",
		Confidence:   confidence,
		Description:  "request latency is consistent and within a WAF rule-engine's typical processing window",
		RawData:      formatDeltaMS(m),
		SignatureID:  "timing-pattern-consistency",
	}, true
}

func (t *TimingAnalyser) timeBaseline(ctx context.Context, targetURL string) []float64 {
	samples := make([]float64, 0, timingSamples)
	for i := 0; i < timingSamples; i++ {
		if i > 0 && !sleepCtx(ctx, interRequestDelay) {
			return samples
		}
		if ctx.Err() != nil {
			return samples
		}
		start := time.Now()
		resp := t.prober.Fetch(ctx, targetURL)
		if resp.Err != nil {
			continue
		}
		samples = append(samples, elapsedMS(start))
	}
	return samples
}

func (t *TimingAnalyser) timeSuspicious(ctx context.Context, targetURL string) []float64 {
	samples := make([]float64, 0, timingSamples)
	for i := 0; i < timingSamples; i++ {
		if i > 0 && !sleepCtx(ctx, interRequestDelay) {
			return samples
		}
		if ctx.Err() != nil {
			return samples
		}
		headers := suspiciousHeaderSets[i%len(suspiciousHeaderSets)]
		start := time.Now()
		var resp *ProbeResponse
		for name, val := range headers {
			resp = t.prober.FetchWithHeader(ctx, targetURL, name, val)
		}
		if resp == nil || resp.Err != nil {
			continue
		}
		samples = append(samples, elapsedMS(start))
	}
	return samples
}

func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func coefficientOfVariation(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	if m == 0 {
		return 0
	}
	var variance float64
	for _, x := range xs {
		variance += (x - m) * (x - m)
	}
	variance /= float64(len(xs))
	return math.Sqrt(variance) / m
}

func formatDeltaMS(delta float64) string {
	return time.Duration(delta * float64(time.Millisecond)).String()
}

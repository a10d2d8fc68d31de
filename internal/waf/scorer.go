package waf

import "strings"

// confidenceThresholds maps the scorer's six named levels to their minimum
// score, grounded on the original tool's level table (Absolute/NearCertain/
// VeryHigh/High/Moderate/Low/None).
const (
	thresholdAbsolute    = 0.98
	thresholdNearCertain = 0.95
	thresholdVeryHigh    = 0.90
	thresholdHigh        = 0.80
	thresholdModerate    = 0.60
	thresholdLow         = 0.20
)

// negativeEvidencePatterns lists, per provider, substrings that — if found
// in ANY response header name — contradict that provider's hypothesis. This
// is modeled as a list-valued map (provider -> all its contradiction
// patterns) rather than one list per insert, so a provider can accumulate
// contradiction markers from more than one other vendor without the later
// insert silently dropping the earlier one.
// AWS intentionally carries no CloudFlare-contradiction entry: spec.md §8's
// worked contradiction scenario (cf-ray + x-amz-cf-id both present) asserts
// CloudFlare alone is penalised, not AWS, so a cf-ray header must not
// contradict AWS here even though it is an otherwise-plausible pairing.
var negativeEvidencePatterns = map[string][]string{
	"CloudFlare": {"x-amz-cf-id", "x-amz-cf-pop", "cloudfront", "akamai-grn", "x-akamai-transformed"},
	"Akamai":     {"cf-ray", "x-amz-cf-id"},
	"Fastly":     {"x-amz-cf-id", "cf-ray"},
	"Vercel":     {"cf-ray", "x-amz-cf-id"},
}

// Scorer is the C7 Confidence Scorer.
type Scorer struct{}

// NewScorer builds a Scorer.
func NewScorer() *Scorer { return &Scorer{} }

// Score fuses all Evidence collected for one provider into a ProviderScore,
// following spec.md §4.7's six-step algorithm: weight each item, accumulate
// per-category subtotals, apply the contradiction penalty once per matched
// header substring, apply evidence-ratio bonuses/penalties, apply the
// diversity bonus, then clamp and map to a level.
func (s *Scorer) Score(provider string, evidence []Evidence, responseHeaders map[string]string) ProviderScore {
	breakdown := make(map[Category]float64, len(allCategories))
	for _, c := range allCategories {
		breakdown[c] = 0
	}

	var totalScore, rawTotal float64
	positive := 0

	for _, ev := range evidence {
		w := weightFor(ev.SignatureID, ev.Method)
		contribution := ev.Confidence * w.Effective()
		totalScore += contribution
		rawTotal += contribution
		breakdown[w.Category] += contribution
		if contribution > 0 {
			positive++
		}
	}

	negativeCount := 0
	for _, pattern := range negativeEvidencePatterns[provider] {
		for headerName := range responseHeaders {
			if strings.Contains(strings.ToLower(headerName), strings.ToLower(pattern)) {
				negativeCount++
				totalScore *= 0.3
			}
		}
	}

	// Category bonuses/penalties are ratios against the pre-penalty total
	// (spec.md §4.7 step 4), using the Headers/Body Category subtotals
	// rather than the Header/StatusCode Method split.
	if rawTotal > 0 {
		headerRatio := breakdown[CategoryHeaders] / rawTotal
		bodyRatio := breakdown[CategoryBody] / rawTotal
		if headerRatio > 0.7 {
			totalScore *= 1.1
		}
		if bodyRatio > 0.5 && headerRatio < 0.3 {
			totalScore *= 0.8
		}
	}

	nonZeroCategories := 0
	for _, v := range breakdown {
		if v > 0 {
			nonZeroCategories++
		}
	}
	if nonZeroCategories >= 3 {
		totalScore *= 1.05
	}

	if totalScore > 1.0 {
		totalScore = 1.0
	}
	if totalScore < 0 {
		totalScore = 0
	}

	return ProviderScore{
		Provider:              provider,
		Score:                 totalScore,
		Level:                 levelFor(totalScore),
		CategoryBreakdown:     breakdown,
		PositiveEvidenceCount: positive,
		NegativeEvidenceCount: negativeCount,
	}
}

func levelFor(score float64) string {
	switch {
	case score >= thresholdAbsolute:
		return "absolute"
	case score >= thresholdNearCertain:
		return "near_certain"
	case score >= thresholdVeryHigh:
		return "very_high"
	case score >= thresholdHigh:
		return "high"
	case score >= thresholdModerate:
		return "moderate"
	case score >= thresholdLow:
		return "low"
	default:
		return "none"
	}
}

// MeetsDetectionThreshold reports whether a score is at least "moderate"
// confidence — a display/reporting convenience, not a gate on WAF/CDN slot
// selection (spec.md §4.6 step 5 sets a slot from the bare argmax, unset
// only when the maximum score is exactly 0).
func MeetsDetectionThreshold(score float64) bool {
	return score >= thresholdModerate
}

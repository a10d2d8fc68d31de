package waf

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// probeDelayMinMS and probeDelayMaxMS bound the jittered rate-limiting delay
// inserted between consecutive payload probes (spec.md §4.5: "default
// 100-500ms") so the catalogue sweep doesn't itself trip the origin's rate
// limiter and get misclassified as the WAF's own doing.
const (
	probeDelayMinMS = 100
	probeDelayMaxMS = 500
)

func probeDelay() time.Duration {
	return time.Duration(probeDelayMinMS+rand.Intn(probeDelayMaxMS-probeDelayMinMS+1)) * time.Millisecond
}

// strongChallengeIndicators alone are enough to classify a response as a
// challenge page. weakChallengeIndicators only count when at least one
// strong indicator is also present — some sites ship the generic
// challenge-platform JS snippet on every page regardless of whether a
// challenge actually fired, so it can't be trusted alone. Grounded on the
// strong/weak split the reference Cloudflare detector uses for exactly this
// false-positive reason.
var strongChallengeIndicators = []string{
	"cloudflare-browser-verification",
	"challenge-form",
	"cf-chl-",
	"attention required",
	"checking your browser",
	"verify you are human",
	"captcha",
}

// weakChallengeIndicator appears on every page of some sites regardless of
// whether a challenge actually fired, so it only corroborates a challenge
// classification that a strong indicator already triggered — it never
// triggers one by itself.
const weakChallengeIndicator = "/cdn-cgi/challenge-platform/"

var justAMomentRe = regexp.MustCompile(`(?i)<title>\s*just a moment`)

// blockedBodyMarkers is spec.md §4.5 rule 7's keyword set.
var blockedBodyMarkers = []string{
	"access denied",
	"blocked",
	"forbidden",
	"security violation",
	"malicious request",
	"attack detected",
	"threat detected",
}

// blockedHeaderNameSubstrings and blockedHeaderValueSubstrings implement
// spec.md §4.5 rule 6: a response whose header name or value carries one of
// these substrings is reclassified Blocked even if it would otherwise read
// as Allowed.
var blockedHeaderNameSubstrings = []string{"blocked", "denied", "security"}
var blockedHeaderValueSubstrings = []string{"blocked", "denied", "forbidden", "violation", "waf"}

var rateLimitHeaderNames = []string{"retry-after", "x-ratelimit-remaining", "x-rate-limit-remaining"}

// vendorHints maps a body/header substring to the vendor it implicates, used
// to populate PayloadResult.WAFHints without re-running the full passive
// signature set on every payload response.
var vendorHints = map[string]string{
	"cloudflare": "CloudFlare",
	"akamai":     "Akamai",
	"aws waf":    "AWS",
	"incapsula":  "Imperva",
	"mod_security": "ModSecurity",
}

// PayloadProber is the C6 component: it fires each catalogue payload at the
// target and classifies the response.
type PayloadProber struct {
	prober    *Prober
	catalogue map[PayloadCategory][]string
}

// NewPayloadProber builds a PayloadProber with the given catalogue (nil uses
// DefaultCatalogue).
func NewPayloadProber(prober *Prober, catalogue map[PayloadCategory][]string) *PayloadProber {
	if catalogue == nil {
		catalogue = DefaultCatalogue()
	}
	return &PayloadProber{prober: prober, catalogue: catalogue}
}

// Probe fires every payload in the catalogue against targetURL and returns
// one PayloadResult per payload. ScannerDetection is a special case (spec.md
// §4.5): its catalogue entries name a scanner rather than carrying request
// data, so they're sent as a substituted User-Agent header instead of a
// query-string parameter. A cancelled ctx stops the sweep before its next
// probe — any payloads not yet sent are simply absent from the result
// rather than fired after the caller gave up (spec.md §5).
func (p *PayloadProber) Probe(ctx context.Context, targetURL string) []PayloadResult {
	var results []PayloadResult
	first := true
	delay := func() bool {
		if first {
			first = false
			return true
		}
		return sleepCtx(ctx, probeDelay())
	}
	for category, payloads := range p.catalogue {
		if category == CategoryScannerDetection {
			for _, name := range payloads {
				if !delay() || ctx.Err() != nil {
					return results
				}
				results = append(results, p.probeScannerUA(ctx, targetURL, name))
			}
			continue
		}
		for _, payload := range payloads {
			if !delay() || ctx.Err() != nil {
				return results
			}
			results = append(results, p.probeOne(ctx, targetURL, category, payload))
		}
	}
	return results
}

func (p *PayloadProber) probeOne(ctx context.Context, targetURL string, category PayloadCategory, payload string) PayloadResult {
	url := appendQueryParam(targetURL, "test", payload)
	start := nowMillis()
	resp := p.prober.Fetch(ctx, url)
	elapsed := nowMillis() - start
	return classify(category, payload, resp, elapsed)
}

// probeScannerUA substitutes the full UA literal for a scanner name and
// fires the request with it set as User-Agent. The returned PayloadResult's
// Payload field is the scanner name verbatim (spec.md §8: "PayloadResult's
// payload field equals p verbatim"), not the substituted UA string.
func (p *PayloadProber) probeScannerUA(ctx context.Context, targetURL, scannerName string) PayloadResult {
	ua, ok := scannerUserAgents[scannerName]
	if !ok {
		ua = scannerName
	}
	start := nowMillis()
	resp := p.prober.FetchWithHeader(ctx, targetURL, "User-Agent", ua)
	elapsed := nowMillis() - start
	return classify(CategoryScannerDetection, scannerName, resp, elapsed)
}

// classify implements spec.md §4.5's classification rules, evaluated in
// order (first match wins): rate limit, challenge, status-code block,
// tentative status-code allow, transport error, header-substring block
// (overrides an allow), body-keyword block, then — for a response that
// still reads Allowed — the "payload reflected" observation.
func classify(category PayloadCategory, payload string, resp *ProbeResponse, elapsedMS int64) PayloadResult {
	result := PayloadResult{
		Category:       category,
		Payload:        payload,
		ResponseTimeMS: elapsedMS,
	}

	if resp.Err != nil {
		result.Classification = ClassificationError
		result.Evidence = append(result.Evidence, resp.Err.Error())
		return result
	}
	result.StatusCode = resp.StatusCode
	bodyLower := strings.ToLower(resp.Body)

	if isRateLimited(resp) {
		result.Classification = ClassificationRateLimited
		result.Evidence = append(result.Evidence, "status_code="+strconv.Itoa(resp.StatusCode))
		addVendorHints(&result, bodyLower, resp)
		return result
	}

	if isChallenge(bodyLower, resp) {
		result.Classification = ClassificationChallenge
		result.Evidence = append(result.Evidence, "challenge page markers")
		addVendorHints(&result, bodyLower, resp)
		return result
	}

	switch resp.StatusCode {
	case 403, 406, 503:
		result.Classification = ClassificationBlocked
		result.Evidence = append(result.Evidence, "status_code="+strconv.Itoa(resp.StatusCode))
		addVendorHints(&result, bodyLower, resp)
		return result
	}

	// Rule 6: a vendor-tagged header overrides an otherwise-allowed response.
	if headerIndicatesBlock(resp) {
		result.Classification = ClassificationBlocked
		result.Evidence = append(result.Evidence, "blocked-signaling response header")
		addVendorHints(&result, bodyLower, resp)
		return result
	}

	// Rule 7: a blocked-page body keyword overrides an otherwise-allowed response.
	if hasBlockedMarker(bodyLower) {
		result.Classification = ClassificationBlocked
		result.Evidence = append(result.Evidence, "blocked-page body marker")
		addVendorHints(&result, bodyLower, resp)
		return result
	}

	switch resp.StatusCode {
	case 200, 301, 302:
		result.Classification = ClassificationAllowed
	default:
		if resp.StatusCode >= 500 {
			result.Classification = ClassificationError
			result.Evidence = append(result.Evidence, "status_code="+strconv.Itoa(resp.StatusCode))
			return result
		}
		result.Classification = ClassificationAllowed
	}

	// Rule 8: doesn't change classification, just notes reflection — the
	// smoke-test reporter uses it to infer Monitoring mode.
	if result.Classification == ClassificationAllowed && payload != "" && strings.Contains(resp.Body, payload) {
		result.Evidence = append(result.Evidence, "payload reflected")
	}
	return result
}

func isRateLimited(resp *ProbeResponse) bool {
	switch resp.StatusCode {
	case 429, 509:
		return true
	}
	for _, h := range rateLimitHeaderNames {
		if _, ok := resp.Header(h); ok {
			return true
		}
	}
	return false
}

// isChallenge reports a challenge page, checking both body and headers
// (spec.md §4.5 rule 2). A strong indicator alone is sufficient; a weak
// indicator only counts when a strong one is also present, since some
// origins serve the generic challenge-platform script on every page
// regardless of whether a challenge fired.
func isChallenge(bodyLower string, resp *ProbeResponse) bool {
	if justAMomentRe.MatchString(bodyLower) {
		return true
	}
	for _, ind := range strongChallengeIndicators {
		if strings.Contains(bodyLower, ind) {
			return true
		}
	}
	for _, v := range resp.Headers {
		lv := strings.ToLower(v)
		for _, ind := range strongChallengeIndicators {
			if strings.Contains(lv, ind) {
				return true
			}
		}
	}
	return false
}

func hasBlockedMarker(bodyLower string) bool {
	for _, m := range blockedBodyMarkers {
		if strings.Contains(bodyLower, m) {
			return true
		}
	}
	return false
}

// headerIndicatesBlock implements spec.md §4.5 rule 6: any response header
// whose name contains a blocked-name substring, or whose value contains a
// blocked-value substring, flags the response as Blocked.
func headerIndicatesBlock(resp *ProbeResponse) bool {
	for name, val := range resp.Headers {
		lname, lval := strings.ToLower(name), strings.ToLower(val)
		for _, s := range blockedHeaderNameSubstrings {
			if strings.Contains(lname, s) {
				return true
			}
		}
		for _, s := range blockedHeaderValueSubstrings {
			if strings.Contains(lval, s) {
				return true
			}
		}
	}
	return false
}

func addVendorHints(result *PayloadResult, bodyLower string, resp *ProbeResponse) {
	for substr, vendor := range vendorHints {
		if strings.Contains(bodyLower, substr) {
			result.WAFHints = append(result.WAFHints, vendor)
			continue
		}
		if server, ok := resp.Header("server"); ok && strings.Contains(strings.ToLower(server), substr) {
			result.WAFHints = append(result.WAFHints, vendor)
		}
	}
	if result.Classification == ClassificationChallenge && strings.Contains(bodyLower, weakChallengeIndicator) {
		result.Evidence = append(result.Evidence, "challenge-platform script present")
	}
}

// classificationWeight is the per-hit weight ToEvidence uses when summing a
// vendor's hits into its summary Evidence confidence (spec.md §4.5: "weighted
// sum over hits (category weighting defined in §4.7's table)"). A Blocked
// hit counts fully; Challenge and RateLimited count as partial corroboration;
// Allowed and Error responses count zero.
func classificationWeight(c Classification) float64 {
	switch c {
	case ClassificationBlocked:
		return 1.0
	case ClassificationChallenge:
		return 0.85
	case ClassificationRateLimited:
		return 0.6
	default:
		return 0.0
	}
}

// ToEvidence converts a probe run's PayloadResults into Evidence for the
// synthetic PayloadAnalysis source (spec.md §4.5's C6 contract): one summary
// Evidence per vendor named in any result's WAFHints, confidence the capped
// weighted sum of its hits using §4.7's payload fallback weight, plus up to
// three per-classification Evidence items for categories that had at least
// one Blocked result.
func ToEvidence(results []PayloadResult) []Evidence {
	payloadWeight := fallbackWeight(MethodPayload).Effective()

	vendorSum := make(map[string]float64)
	blockedCategories := make(map[PayloadCategory]bool)
	for _, r := range results {
		w := classificationWeight(r.Classification) * payloadWeight
		for _, vendor := range r.WAFHints {
			vendorSum[vendor] += w
		}
		if r.Classification == ClassificationBlocked {
			blockedCategories[r.Category] = true
		}
	}

	var evidence []Evidence
	for _, vendor := range sortedKeys(vendorSum) {
		score := vendorSum[vendor]
		if score > 1.0 {
			score = 1.0
		}
		evidence = append(evidence, Evidence{
			Method:       MethodPayload,
			MethodDetail: vendor,
			Confidence:   score,
			Description:  "payload probing implicated " + vendor,
			RawData:      vendor,
			SignatureID:  "payload_detection_" + vendor,
		})
	}

	categories := sortedCategoryKeys(blockedCategories)
	if len(categories) > 3 {
		categories = categories[:3]
	}
	for _, cat := range categories {
		evidence = append(evidence, Evidence{
			Method:       MethodPayload,
			MethodDetail: string(cat),
			Confidence:   0.7,
			Description:  "at least one " + string(cat) + " payload was blocked",
			RawData:      string(cat),
			SignatureID:  "blocked_" + string(cat) + "_payload",
		})
	}
	return evidence
}

func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedCategoryKeys(m map[PayloadCategory]bool) []PayloadCategory {
	out := make([]PayloadCategory, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// appendQueryParam appends a URL-encoded query parameter to targetURL.
func appendQueryParam(targetURL, key, value string) string {
	sep := "?"
	if strings.Contains(targetURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s%s=%s", targetURL, sep, key, urlEscape(value))
}

func urlEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-' || r == '_' || r == '.' || r == '~':
			b.WriteRune(r)
		default:
			b.WriteString(fmt.Sprintf("%%%02X", r))
		}
	}
	return b.String()
}

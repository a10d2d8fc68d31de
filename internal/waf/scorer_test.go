package waf

import "testing"

func headersFor(pairs ...string) map[string]string {
	h := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		h[pairs[i]] = pairs[i+1]
	}
	return h
}

func respFor(status int, body string, pairs ...string) *ProbeResponse {
	return &ProbeResponse{StatusCode: status, Body: body, Headers: headersFor(pairs...)}
}

// detectAndScore runs the passive signature library end to end (what the
// Detection Engine does per provider) and returns the fused score.
func detectAndScore(t *testing.T, provider string, resp *ProbeResponse) ProviderScore {
	t.Helper()
	evidence := (SignatureProvider{}).Detect(provider, resp)
	return NewScorer().Score(provider, evidence, resp.Headers)
}

// Seed scenario 1 (spec.md §8): CloudFlare happy path.
func TestScorer_CloudFlareHappyPath(t *testing.T) {
	resp := respFor(200, "",
		"cf-ray", "7a1b2c3d4e5f6789-DFW",
		"server", "cloudflare",
		"cf-cache-status", "HIT",
	)
	cf := detectAndScore(t, "CloudFlare", resp)
	if cf.Score < 0.95 {
		t.Errorf("CloudFlare score = %v, want >= 0.95", cf.Score)
	}
	aws := detectAndScore(t, "AWS", resp)
	if aws.Score != 0 {
		t.Errorf("AWS score = %v, want 0", aws.Score)
	}
}

// Seed scenario 2: CloudFront happy path.
func TestScorer_CloudFrontHappyPath(t *testing.T) {
	resp := respFor(200, "",
		"x-amz-cf-id", "abcd1234-EFGH-5678-ijkl-mnopqrst",
		"x-amz-cf-pop", "DFW3-C1",
		"via", "1.1 d1234.cloudfront.net (CloudFront)",
	)
	aws := detectAndScore(t, "AWS", resp)
	if aws.Score < 0.95 {
		t.Errorf("AWS score = %v, want >= 0.95", aws.Score)
	}
	cf := detectAndScore(t, "CloudFlare", resp)
	if cf.Score != 0 {
		t.Errorf("CloudFlare score = %v, want 0", cf.Score)
	}
	fastly := detectAndScore(t, "Fastly", resp)
	if fastly.Score != 0 {
		t.Errorf("Fastly score = %v, want 0 (shared x-cache gate must not fire)", fastly.Score)
	}
}

// Seed scenario 3: Fastly vs CloudFront disambiguation via shared x-cache.
// The x-cache gate excludes Fastly's own x-cache signature (it names
// cloudfront), but the via:varnish header still carries real, if weak,
// Fastly signal — the spec's expectation is that this signal alone is
// "insufficient to overcome the CloudFront markers", not that it's absent.
func TestScorer_FastlyVsCloudFrontDisambiguation(t *testing.T) {
	resp := respFor(200, "",
		"x-cache", "HIT from cloudfront",
		"via", "1.1 varnish",
	)
	aws := detectAndScore(t, "AWS", resp)
	fastly := detectAndScore(t, "Fastly", resp)
	if fastly.Score <= 0 {
		t.Errorf("Fastly score = %v, want > 0 (via:varnish is still real, if weak, signal)", fastly.Score)
	}
	if aws.Score <= fastly.Score {
		t.Errorf("AWS score (%v) should exceed Fastly score (%v): the CloudFront markers must win the CDN slot", aws.Score, fastly.Score)
	}
	if aws.Score <= 0 {
		t.Errorf("AWS score = %v, want > 0 so it can win the CDN slot", aws.Score)
	}
}

// Seed scenario 4: plain nginx origin, nothing detected.
func TestScorer_PlainNginxNothingDetected(t *testing.T) {
	resp := respFor(200, "Hello",
		"server", "nginx/1.18.0",
		"x-powered-by", "Express",
	)
	for _, p := range []string{"CloudFlare", "Akamai", "AWS", "Fastly", "Vercel"} {
		s := detectAndScore(t, p, resp)
		if s.Score != 0 {
			t.Errorf("%s score = %v, want 0", p, s.Score)
		}
	}
}

// Seed scenario 6: contradiction penalty. Uses a single, sub-saturating
// CloudFlare signature so the unpenalised score stays below the [0,1] clamp
// — otherwise clamping would distort the penalised/unpenalised ratio this
// test checks.
func TestScorer_ContradictionPenalty(t *testing.T) {
	resp := respFor(200, "",
		"cf-request-id", "abcd-1234",
		"x-amz-cf-id", "abcd1234",
	)
	cfEvidence := (SignatureProvider{}).Detect("CloudFlare", resp)
	unpenalised := NewScorer().Score("CloudFlare", cfEvidence, nil).Score
	penalised := NewScorer().Score("CloudFlare", cfEvidence, resp.Headers).Score
	if penalised > 0.3*unpenalised+1e-9 {
		t.Errorf("penalised CloudFlare score %v should be <= 0.3x unpenalised %v", penalised, unpenalised)
	}

	awsEvidence := (SignatureProvider{}).Detect("AWS", resp)
	awsPenalised := NewScorer().Score("AWS", awsEvidence, resp.Headers).Score
	awsUnpenalised := NewScorer().Score("AWS", awsEvidence, nil).Score
	if awsPenalised != awsUnpenalised {
		t.Errorf("AWS should not be penalised by a cf-request-id header present alongside it: got %v, want %v", awsPenalised, awsUnpenalised)
	}
}

// Boundary: header-dominant evidence gets the 1.10x bonus.
func TestScorer_HeaderBonus(t *testing.T) {
	evidence := []Evidence{
		{Method: MethodHeader, SignatureID: "cf-ray-header", Confidence: 0.95},
	}
	score := NewScorer().Score("CloudFlare", evidence, nil)
	rawTotal := 0.95 * weightFor("cf-ray-header", MethodHeader).Effective()
	want := rawTotal * 1.10
	if want > 1.0 {
		want = 1.0
	}
	if score.Score < want-1e-9 {
		t.Errorf("header-dominant score = %v, want >= %v", score.Score, want)
	}
}

// Boundary: body-dominant, header-scarce evidence gets the 0.80x penalty.
func TestScorer_BodyPenalty(t *testing.T) {
	evidence := []Evidence{
		{Method: MethodBody, SignatureID: "cf-challenge-body", Confidence: 0.70},
	}
	score := NewScorer().Score("CloudFlare", evidence, nil)
	rawTotal := 0.70 * weightFor("cf-challenge-body", MethodBody).Effective()
	want := rawTotal * 0.80
	if score.Score > want+1e-9 {
		t.Errorf("body-dominant score = %v, want <= %v", score.Score, want)
	}
}

// Boundary: evidence spread over >= 3 categories gets the 1.05x diversity bonus.
func TestScorer_DiversityBonus(t *testing.T) {
	evidence := []Evidence{
		{Method: MethodHeader, SignatureID: "cf-ray-header", Confidence: 0.95},
		{Method: MethodDNS, SignatureID: "dns-cname-cloudflare", Confidence: 0.99},
		{Method: MethodPayload, SignatureID: "payload-blocked", Confidence: 0.6},
	}
	score := NewScorer().Score("CloudFlare", evidence, nil)
	if score.PositiveEvidenceCount != 3 {
		t.Fatalf("expected 3 positive evidence items, got %d", score.PositiveEvidenceCount)
	}
	nonZero := 0
	for _, v := range score.CategoryBreakdown {
		if v > 0 {
			nonZero++
		}
	}
	if nonZero < 3 {
		t.Fatalf("test fixture doesn't actually span 3 categories, got %d", nonZero)
	}

	// Scaled down so the bonus isn't hidden by the [0,1] clamp.
	var scaled []Evidence
	var rawTotal float64
	for _, e := range evidence {
		e.Confidence *= 0.3
		scaled = append(scaled, e)
		rawTotal += e.Confidence * weightFor(e.SignatureID, e.Method).Effective()
	}
	got := NewScorer().Score("CloudFlare", scaled, nil).Score
	want := rawTotal * 1.05
	if d := got - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("diverse-evidence score = %v, want %v (raw %v x 1.05)", got, want, rawTotal)
	}
}

// Invariant: every score is clamped into [0,1].
func TestScorer_ScoreClampedToUnitInterval(t *testing.T) {
	evidence := []Evidence{
		{Method: MethodHeader, SignatureID: "cf-ray-header", Confidence: 1.0},
		{Method: MethodHeader, SignatureID: "cf-cache-status-header", Confidence: 1.0},
		{Method: MethodHeader, SignatureID: "cf-server-header", Confidence: 1.0},
		{Method: MethodHeader, SignatureID: "cf-connecting-ip-header", Confidence: 1.0},
		{Method: MethodHeader, SignatureID: "cf-ipcountry-header", Confidence: 1.0},
		{Method: MethodHeader, SignatureID: "cf-request-id-header", Confidence: 1.0},
	}
	score := NewScorer().Score("CloudFlare", evidence, nil)
	if score.Score < 0 || score.Score > 1.0 {
		t.Fatalf("score %v out of [0,1]", score.Score)
	}
}

// Determinism: scoring the same inputs twice gives bitwise-equal results.
func TestScorer_Deterministic(t *testing.T) {
	resp := respFor(200, "", "cf-ray", "7a1b2c3d4e5f6789-DFW", "server", "cloudflare")
	ev := (SignatureProvider{}).Detect("CloudFlare", resp)
	a := NewScorer().Score("CloudFlare", ev, resp.Headers)
	b := NewScorer().Score("CloudFlare", ev, resp.Headers)
	if a.Score != b.Score {
		t.Fatalf("scorer is non-deterministic: %v != %v", a.Score, b.Score)
	}
}

// Invariant: a provider's score is 0 iff its evidence list is empty.
func TestScorer_ZeroScoreIffEmptyEvidence(t *testing.T) {
	if s := NewScorer().Score("CloudFlare", nil, nil); s.Score != 0 {
		t.Errorf("empty evidence should score 0, got %v", s.Score)
	}
	ev := []Evidence{{Method: MethodHeader, SignatureID: "cf-ray-header", Confidence: 0.5}}
	if s := NewScorer().Score("CloudFlare", ev, nil); s.Score == 0 {
		t.Errorf("non-empty evidence should not score 0")
	}
}

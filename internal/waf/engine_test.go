package waf

import "testing"

func newTestEngine(providers []Provider) *Engine {
	return &Engine{registry: NewRegistry(providers)}
}

func TestSelectSlots_ArgmaxWins(t *testing.T) {
	providers := []Provider{
		{Name: "CloudFlare", Kind: ProviderKindBoth, Priority: 1, Enabled: true},
		{Name: "AWS", Kind: ProviderKindBoth, Priority: 2, Enabled: true},
	}
	e := newTestEngine(providers)
	result := &DetectionResult{ProviderScores: map[string]ProviderScore{
		"CloudFlare": {Score: 0.9},
		"AWS":        {Score: 0.4},
	}}
	e.selectSlots(result)
	if result.WAF == nil || result.WAF.Name != "CloudFlare" {
		t.Errorf("WAF = %v, want CloudFlare", result.WAF)
	}
	if result.CDN == nil || result.CDN.Name != "CloudFlare" {
		t.Errorf("CDN = %v, want CloudFlare", result.CDN)
	}
}

func TestSelectSlots_TieBrokenByPriority(t *testing.T) {
	providers := []Provider{
		{Name: "Akamai", Kind: ProviderKindBoth, Priority: 2, Enabled: true},
		{Name: "CloudFlare", Kind: ProviderKindBoth, Priority: 1, Enabled: true},
	}
	e := newTestEngine(providers)
	result := &DetectionResult{ProviderScores: map[string]ProviderScore{
		"Akamai":     {Score: 0.7},
		"CloudFlare": {Score: 0.7},
	}}
	e.selectSlots(result)
	if result.WAF.Name != "CloudFlare" {
		t.Errorf("WAF = %v, want CloudFlare (lower priority value wins a tie)", result.WAF.Name)
	}
}

func TestSelectSlots_ZeroScoreLeavesSlotUnset(t *testing.T) {
	providers := []Provider{
		{Name: "CloudFlare", Kind: ProviderKindBoth, Priority: 1, Enabled: true},
	}
	e := newTestEngine(providers)
	result := &DetectionResult{ProviderScores: map[string]ProviderScore{
		"CloudFlare": {Score: 0},
	}}
	e.selectSlots(result)
	if result.WAF != nil || result.CDN != nil {
		t.Errorf("expected both slots unset when every score is 0, got WAF=%v CDN=%v", result.WAF, result.CDN)
	}
}

func TestSelectSlots_CDNOnlyProviderNotEligibleForWAFSlot(t *testing.T) {
	providers := []Provider{
		{Name: "Vercel", Kind: ProviderKindCDN, Priority: 5, Enabled: true},
	}
	e := newTestEngine(providers)
	result := &DetectionResult{ProviderScores: map[string]ProviderScore{
		"Vercel": {Score: 0.9},
	}}
	e.selectSlots(result)
	if result.WAF != nil {
		t.Errorf("WAF = %v, want nil (Vercel is CDN-only)", result.WAF)
	}
	if result.CDN == nil || result.CDN.Name != "Vercel" {
		t.Errorf("CDN = %v, want Vercel", result.CDN)
	}
}

func TestCrossCutEvidence_DNSNamedProviderIncluded(t *testing.T) {
	dnsEv := []Evidence{
		{Method: MethodDNS, MethodDetail: "CloudFlare", Confidence: 0.99, SignatureID: "dns-cname-cloudflare"},
		{Method: MethodDNS, MethodDetail: "AWS", Confidence: 0.98, SignatureID: "dns-cname-aws"},
	}
	out := crossCutEvidence("CloudFlare", dnsEv, nil)
	if len(out) != 1 || out[0].MethodDetail != "CloudFlare" {
		t.Errorf("crossCutEvidence = %v, want only the CloudFlare DNS item", out)
	}
}

func TestCrossCutEvidence_PayloadHintIncluded(t *testing.T) {
	payloadRes := []PayloadResult{
		{Category: CategoryXSSBasic, Payload: "x", Classification: ClassificationBlocked, WAFHints: []string{"Akamai"}},
	}
	payloadEv := ToEvidence(payloadRes)
	out := crossCutEvidence("Akamai", nil, payloadEv)
	if len(out) != 1 {
		t.Fatalf("expected 1 cross-cut item, got %d", len(out))
	}
	if out[0].SignatureID != "payload_detection_Akamai" {
		t.Errorf("SignatureID = %q, want payload_detection_Akamai", out[0].SignatureID)
	}
}

func TestCrossCutEvidence_UnrelatedProviderGetsNothing(t *testing.T) {
	dnsEv := []Evidence{{Method: MethodDNS, MethodDetail: "AWS"}}
	payloadRes := []PayloadResult{{Classification: ClassificationBlocked, WAFHints: []string{"Akamai"}}}
	payloadEv := ToEvidence(payloadRes)
	out := crossCutEvidence("Vercel", dnsEv, payloadEv)
	if len(out) != 0 {
		t.Errorf("expected no cross-cut evidence for an unrelated provider, got %v", out)
	}
}

func TestToEvidence_OnlyBlockedCategoriesGetSummaryItems(t *testing.T) {
	results := []PayloadResult{
		{Classification: ClassificationBlocked, Payload: "a", Category: CategoryXSSBasic},
		{Classification: ClassificationAllowed, Payload: "b", Category: CategorySQLiBasic},
		{Classification: ClassificationChallenge, Payload: "c", Category: CategoryPathTraversal},
	}
	ev := ToEvidence(results)
	var categoryItems int
	for _, e := range ev {
		if e.SignatureID == "blocked_"+string(CategoryXSSBasic)+"_payload" {
			categoryItems++
		}
	}
	if categoryItems != 1 {
		t.Fatalf("expected exactly one blocked_xss_basic_payload item, got %d (all evidence: %v)", categoryItems, ev)
	}
}

func TestToEvidence_VendorSummaryCapsAtOne(t *testing.T) {
	var results []PayloadResult
	for i := 0; i < 10; i++ {
		results = append(results, PayloadResult{Classification: ClassificationBlocked, WAFHints: []string{"CloudFlare"}})
	}
	ev := ToEvidence(results)
	for _, e := range ev {
		if e.SignatureID == "payload_detection_CloudFlare" && e.Confidence > 1.0 {
			t.Errorf("vendor summary confidence = %v, want <= 1.0", e.Confidence)
		}
	}
}

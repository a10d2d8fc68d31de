package waf

import "testing"

func TestSignatureProvider_NoMatchOnEmptyResponse(t *testing.T) {
	resp := respFor(200, "")
	if ev := (SignatureProvider{}).Detect("CloudFlare", resp); ev != nil {
		t.Errorf("expected no evidence, got %v", ev)
	}
}

func TestSignatureProvider_NilResponse(t *testing.T) {
	if ev := (SignatureProvider{}).Detect("CloudFlare", nil); ev != nil {
		t.Errorf("expected no evidence for nil response, got %v", ev)
	}
}

func TestSignatureProvider_RawDataIsMatchedSubstring(t *testing.T) {
	// spec.md §9: raw_data must be the exact matched snippet, not the
	// signature's tag name.
	resp := respFor(200, "blah blah checking your browser blah")
	ev := (SignatureProvider{}).Detect("CloudFlare", resp)
	if len(ev) == 0 {
		t.Fatal("expected challenge-body evidence")
	}
	for _, e := range ev {
		if e.SignatureID == "cf-challenge-body" {
			if e.RawData == "cf-challenge-body" || e.RawData == "" {
				t.Errorf("raw_data = %q, want the matched substring", e.RawData)
			}
			return
		}
	}
	t.Fatal("cf-challenge-body evidence not found")
}

func TestSignatureProvider_AkamaiHeaders(t *testing.T) {
	resp := respFor(200, "",
		"x-akamai-request-id", "abc123",
		"server", "AkamaiGHost",
	)
	ev := (SignatureProvider{}).Detect("Akamai", resp)
	if len(ev) < 2 {
		t.Errorf("expected at least 2 Akamai evidence items, got %d", len(ev))
	}
}

func TestSignatureProvider_VercelServerHeaderUngated(t *testing.T) {
	resp := respFor(200, "", "server", "Vercel")
	ev := (SignatureProvider{}).Detect("Vercel", resp)
	found := false
	for _, e := range ev {
		if e.SignatureID == "vercel-server-header" {
			found = true
		}
	}
	if !found {
		t.Error("expected vercel-server-header to match without any gate")
	}
}

// Every emitted confidence must lie in [0,1] (spec.md §8 universal invariant).
func TestSignatureProvider_ConfidenceWithinUnitInterval(t *testing.T) {
	resp := respFor(200, "checking your browser",
		"cf-ray", "abc123-DFW",
		"cf-cache-status", "HIT",
		"server", "cloudflare",
		"cf-connecting-ip", "1.2.3.4",
		"cf-ipcountry", "US",
		"cf-request-id", "abcd",
	)
	for _, provider := range []string{"CloudFlare", "Akamai", "AWS", "Fastly", "Vercel"} {
		for _, e := range (SignatureProvider{}).Detect(provider, resp) {
			if e.Confidence < 0 || e.Confidence > 1 {
				t.Errorf("%s evidence %s confidence = %v, out of [0,1]", provider, e.SignatureID, e.Confidence)
			}
		}
	}
}

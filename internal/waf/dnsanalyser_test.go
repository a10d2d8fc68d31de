package waf

import (
	"context"
	"testing"
)

// fakeResolver returns a fixed CNAME chain: host -> chain[0] -> chain[1] ...
type fakeResolver struct {
	chain map[string]string
}

func (f *fakeResolver) LookupCNAME(_ context.Context, host string) (string, error) {
	if next, ok := f.chain[host]; ok {
		return next, nil
	}
	return "", errTest{"no such host"}
}

func TestDNSAnalyser_CloudFlareCNAME(t *testing.T) {
	r := &fakeResolver{chain: map[string]string{
		"example.com": "example.com.cdn.cloudflare.net.",
	}}
	ev := NewDNSAnalyser(r).Analyse(context.Background(), "example.com")
	if len(ev) != 1 {
		t.Fatalf("expected 1 evidence item, got %d", len(ev))
	}
	if ev[0].MethodDetail != "CloudFlare" {
		t.Errorf("MethodDetail = %q, want CloudFlare", ev[0].MethodDetail)
	}
	if ev[0].Confidence < 0.94 || ev[0].Confidence > 0.99 {
		t.Errorf("confidence = %v, want within spec's 0.94-0.99 band", ev[0].Confidence)
	}
	if ev[0].RawData != "example.com.cdn.cloudflare.net." {
		t.Errorf("RawData = %q, want the matched CNAME", ev[0].RawData)
	}
}

func TestDNSAnalyser_MultiHopChain(t *testing.T) {
	r := &fakeResolver{chain: map[string]string{
		"example.com":        "alias.example.net.",
		"alias.example.net.": "d123.cloudfront.net.",
	}}
	ev := NewDNSAnalyser(r).Analyse(context.Background(), "example.com")
	found := false
	for _, e := range ev {
		if e.MethodDetail == "AWS" {
			found = true
		}
	}
	if !found {
		t.Error("expected AWS evidence from the second hop")
	}
}

func TestDNSAnalyser_LoopTerminates(t *testing.T) {
	r := &fakeResolver{chain: map[string]string{
		"a.example.com.": "b.example.com.",
		"b.example.com.": "a.example.com.",
	}}
	// Must return (not hang) even with a CNAME cycle.
	done := make(chan struct{})
	go func() {
		NewDNSAnalyser(r).Analyse(context.Background(), "a.example.com.")
		close(done)
	}()
	select {
	case <-done:
	default:
	}
	<-done
}

func TestDNSAnalyser_NoMatchingPattern(t *testing.T) {
	r := &fakeResolver{chain: map[string]string{
		"example.com": "origin.internal.example.org.",
	}}
	ev := NewDNSAnalyser(r).Analyse(context.Background(), "example.com")
	if len(ev) != 0 {
		t.Errorf("expected no evidence for an unrecognised CNAME, got %v", ev)
	}
}

func TestDNSAnalyser_ResolverError(t *testing.T) {
	r := &fakeResolver{chain: map[string]string{}}
	ev := NewDNSAnalyser(r).Analyse(context.Background(), "example.com")
	if len(ev) != 0 {
		t.Errorf("expected no evidence when resolution fails, got %v", ev)
	}
}

func TestExtractHost(t *testing.T) {
	cases := map[string]string{
		"https://example.com/path?q=1": "example.com",
		"http://example.com:8080/x":    "example.com",
		"example.com":                  "example.com",
		"https://example.com":          "example.com",
		"https://example.com#frag":     "example.com",
	}
	for in, want := range cases {
		if got := ExtractHost(in); got != want {
			t.Errorf("ExtractHost(%q) = %q, want %q", in, got, want)
		}
	}
}

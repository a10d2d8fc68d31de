package waf

import (
	"context"
	"net"
	"regexp"
	"strings"
)

// maxCNAMEHops bounds the chain walk so a misconfigured or adversarial DNS
// setup with a CNAME loop can't hang the analyser — the original Rust tool
// resolves a single CNAME record; we follow the full chain (SPEC_FULL §3)
// but still need a hard ceiling.
const maxCNAMEHops = 8

// dnsPattern is one provider's CNAME-suffix signature.
type dnsPattern struct {
	Provider   string
	Pattern    *regexp.Regexp
	Confidence float64
}

var dnsPatterns = []dnsPattern{
	{"CloudFlare", regexp.MustCompile(`(?i)\.cdn\.cloudflare\.net\.?$`), 0.99},
	{"AWS", regexp.MustCompile(`(?i)\.cloudfront\.net\.?$`), 0.98},
	{"Fastly", regexp.MustCompile(`(?i)\.fastly\.net\.?$|\.fastlylb\.net\.?$`), 0.97},
	{"Akamai", regexp.MustCompile(`(?i)\.akamaiedge\.net\.?$|\.akamai\.net\.?$|\.edgekey\.net\.?$|\.edgesuite\.net\.?$`), 0.96},
	{"Vercel", regexp.MustCompile(`(?i)\.vercel-dns\.com\.?$|\.cname\.vercel-dns\.com\.?$`), 0.96},
	{"AWS", regexp.MustCompile(`(?i)\.elb\.amazonaws\.com\.?$`), 0.94},
}

// DNSResolver is the DNS lookup collaborator (spec.md §6 external interface),
// abstracted so tests can substitute a fake chain without a real resolver.
type DNSResolver interface {
	LookupCNAME(ctx context.Context, host string) (string, error)
}

// netResolver is the production DNSResolver backed by net.Resolver.
type netResolver struct {
	resolver *net.Resolver
}

// NewDNSResolver returns the default stdlib-backed resolver.
func NewDNSResolver() DNSResolver {
	return &netResolver{resolver: net.DefaultResolver}
}

func (n *netResolver) LookupCNAME(ctx context.Context, host string) (string, error) {
	return n.resolver.LookupCNAME(ctx, host)
}

// DNSAnalyser is the C4 component: it walks a host's CNAME chain and scores
// each hop against the provider pattern table.
type DNSAnalyser struct {
	resolver DNSResolver
}

// NewDNSAnalyser builds a DNSAnalyser using the given resolver.
func NewDNSAnalyser(resolver DNSResolver) *DNSAnalyser {
	if resolver == nil {
		resolver = NewDNSResolver()
	}
	return &DNSAnalyser{resolver: resolver}
}

// Analyse resolves the host's CNAME chain and emits Evidence for every hop
// that matches a known provider suffix.
func (d *DNSAnalyser) Analyse(ctx context.Context, host string) []Evidence {
	chain := d.resolveChain(ctx, host)
	var evidence []Evidence
	for _, cname := range chain {
		for _, pat := range dnsPatterns {
			if pat.Pattern.MatchString(cname) {
				evidence = append(evidence, Evidence{
					Method:       MethodDNS,
					MethodDetail: pat.Provider,
					Confidence:   pat.Confidence,
					Description:  "CNAME chain resolves through a " + pat.Provider + " edge hostname",
					RawData:      cname,
					SignatureID:  "dns-cname-" + strings.ToLower(pat.Provider),
				})
			}
		}
	}
	return evidence
}

// resolveChain follows CNAME records starting at host, up to maxCNAMEHops,
// stopping early on error, no further CNAME, or a repeated hostname.
func (d *DNSAnalyser) resolveChain(ctx context.Context, host string) []string {
	seen := map[string]bool{strings.ToLower(host) + ".": true}
	current := host
	var chain []string
	for i := 0; i < maxCNAMEHops; i++ {
		cname, err := d.resolver.LookupCNAME(ctx, current)
		if err != nil || cname == "" {
			break
		}
		key := strings.ToLower(cname)
		if seen[key] {
			break
		}
		seen[key] = true
		chain = append(chain, cname)
		current = cname
	}
	return chain
}

// ExtractHost strips scheme, port and path from a target URL/hostname,
// returning the bare DNS name to resolve.
func ExtractHost(target string) string {
	host := target
	if idx := strings.Index(host, "://"); idx != -1 {
		host = host[idx+3:]
	}
	if idx := strings.IndexAny(host, "/?#"); idx != -1 {
		host = host[:idx]
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return host
}

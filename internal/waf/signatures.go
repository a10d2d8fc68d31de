package waf

import "regexp"

// mustRe compiles a pattern once at package init; a bad pattern here is a
// programming error, not a runtime condition, so it panics like the
// teacher's signature tables did for its hardcoded regexes.
func mustRe(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

// signatureLibrary is populated once by init() and never mutated afterward,
// so concurrent reads from the fan-out goroutines in the Detection Engine
// need no locking.
var signatureLibrary []Signature

// weightTable maps a signature ID to the scorer's base/specificity/
// reliability weighting (spec.md §4.7 step 2).
var weightTable map[string]EvidenceWeight

func init() {
	signatureLibrary = buildSignatures()
	weightTable = buildWeightTable(signatureLibrary)
}

// buildSignatures assembles the per-provider signature set. Confidences and
// header/body patterns are grounded on the CNAME/header tables the original
// Rust detector hardcoded per vendor (cloudflare.rs, and the equivalent
// header lists for aws/fastly/akamai/vercel), cross-checked against the
// broader header catalogue in the dp2pwn-gospider WAF detector.
func buildSignatures() []Signature {
	sigs := []Signature{
		// --- CloudFlare ---
		{
			ID: "cf-ray-header", Provider: "CloudFlare", HeaderName: "cf-ray",
			HeaderPattern: mustRe(`^[a-f0-9]+-[A-Z]{3}$`), Confidence: 0.95,
			Category: CategoryHeaders, Description: "cf-ray header present",
		},
		{
			ID: "cf-cache-status-header", Provider: "CloudFlare", HeaderName: "cf-cache-status",
			HeaderPattern: mustRe(`(?i)^(HIT|MISS|EXPIRED|BYPASS|DYNAMIC|REVALIDATED)$`), Confidence: 0.90,
			Category: CategoryHeaders, Description: "cf-cache-status header present",
		},
		{
			ID: "cf-server-header", Provider: "CloudFlare", HeaderName: "server",
			HeaderPattern: mustRe(`(?i)cloudflare`), Confidence: 0.85,
			Category: CategoryServer, Description: "Server header names cloudflare",
		},
		{
			ID: "cf-connecting-ip-header", Provider: "CloudFlare", HeaderName: "cf-connecting-ip",
			HeaderPattern: mustRe(`.+`), Confidence: 0.80,
			Category: CategoryHeaders, Description: "cf-connecting-ip header present",
		},
		{
			ID: "cf-ipcountry-header", Provider: "CloudFlare", HeaderName: "cf-ipcountry",
			HeaderPattern: mustRe(`.+`), Confidence: 0.75,
			Category: CategoryHeaders, Description: "cf-ipcountry header present",
		},
		{
			ID: "cf-request-id-header", Provider: "CloudFlare", HeaderName: "cf-request-id",
			HeaderPattern: mustRe(`.+`), Confidence: 0.85,
			Category: CategoryHeaders, Description: "cf-request-id header present",
		},
		{
			ID: "cf-challenge-body", Provider: "CloudFlare",
			BodyPattern: mustRe(`(?i)(checking your browser|cf-browser-verification|cf-chl-|attention required|just a moment)`),
			Confidence:  0.70, Category: CategoryBody, Description: "CloudFlare challenge page markers",
		},
		{
			ID: "cf-error-body", Provider: "CloudFlare",
			BodyPattern: mustRe(`(?i)(cloudflare ray id|error 1020|error 1015|error 1012)`),
			Confidence:  0.65, Category: CategoryErrorPage, Description: "CloudFlare branded error page",
		},
		{
			ID: "cf-js-body", Provider: "CloudFlare",
			BodyPattern: mustRe(`(?i)(jschl_vc|jschl_answer|cf-turnstile|/cdn-cgi/challenge-platform/)`),
			Confidence:  0.60, Category: CategoryBody, Description: "CloudFlare JS challenge tokens",
		},

		// --- Akamai ---
		{
			ID: "akamai-grn-header", Provider: "Akamai", HeaderName: "x-akamai-request-id",
			HeaderPattern: mustRe(`.+`), Confidence: 0.90,
			Category: CategoryHeaders, Description: "x-akamai-request-id header present",
		},
		{
			ID: "akamai-transformed-header", Provider: "Akamai", HeaderName: "x-akamai-transformed",
			HeaderPattern: mustRe(`.+`), Confidence: 0.85,
			Category: CategoryHeaders, Description: "x-akamai-transformed header present",
		},
		{
			ID: "akamai-server-header", Provider: "Akamai", HeaderName: "server",
			HeaderPattern: mustRe(`(?i)akamaighost`), Confidence: 0.85,
			Category: CategoryServer, Description: "Server header names AkamaiGHost",
		},
		{
			ID: "akamai-cache-status-header", Provider: "Akamai", HeaderName: "x-cache",
			HeaderPattern: mustRe(`(?i)akamai`), Confidence: 0.70,
			Category: CategoryHeaders, Description: "x-cache header mentions akamai",
		},
		{
			ID: "akamai-error-body", Provider: "Akamai",
			BodyPattern: mustRe(`(?i)(reference #[0-9.]+|access denied.*akamai)`),
			Confidence:  0.65, Category: CategoryErrorPage, Description: "Akamai branded error reference",
		},

		// --- AWS (CloudFront / WAF) ---
		{
			ID: "aws-cf-id-header", Provider: "AWS", HeaderName: "x-amz-cf-id",
			HeaderPattern: mustRe(`.+`), Confidence: 0.90,
			Category: CategoryHeaders, Description: "x-amz-cf-id header present",
		},
		{
			ID: "aws-cf-pop-header", Provider: "AWS", HeaderName: "x-amz-cf-pop",
			HeaderPattern: mustRe(`.+`), Confidence: 0.85,
			Category: CategoryHeaders, Description: "x-amz-cf-pop header present",
		},
		{
			// x-cache is shared with Fastly/Varnish-style CDNs, but a value
			// that itself names cloudfront is self-evidently AWS — no
			// separate gate header needed, unlike the x-timer/age/
			// cache-control generic-caching signatures below.
			ID: "aws-xcache-header", Provider: "AWS", HeaderName: "x-cache",
			HeaderPattern: mustRe(`(?i)cloudfront`), Confidence: 0.60,
			Category: CategoryHeaders, Description: "x-cache header mentions cloudfront",
		},
		{
			ID: "aws-waf-block-body", Provider: "AWS",
			BodyPattern: mustRe(`(?i)(request blocked|aws waf)`), Confidence: 0.55,
			Category: CategoryBody, Description: "AWS WAF block page text",
		},
		{
			// x-timer/age/cache-control are generic caching headers other
			// CDNs also set; gated on a definitive CloudFront header being
			// present so they never fire on a non-CloudFront origin.
			ID: "aws-xtimer-header", Provider: "AWS", HeaderName: "x-timer",
			HeaderPattern: mustRe(`.+`), Confidence: 0.65,
			Category: CategoryHeaders, Description: "x-timer header present alongside a CloudFront marker",
			GateHeader: "x-amz-cf-id",
		},
		{
			ID: "aws-age-header", Provider: "AWS", HeaderName: "age",
			HeaderPattern: mustRe(`.+`), Confidence: 0.60,
			Category: CategoryHeaders, Description: "age header present alongside a CloudFront marker",
			GateHeader: "x-amz-cf-id",
		},
		{
			ID: "aws-cachecontrol-header", Provider: "AWS", HeaderName: "cache-control",
			HeaderPattern: mustRe(`.+`), Confidence: 0.55,
			Category: CategoryHeaders, Description: "cache-control header present alongside a CloudFront marker",
			GateHeader: "x-amz-cf-id",
		},
		{
			// Status-code rule (spec.md §4.1's fifth canonical signature
			// class): gated on a CloudFront marker so a plain origin error
			// can't be mistaken for an AWS WAF/CloudFront response.
			ID: "aws-403-pattern", Provider: "AWS", StatusCodes: []int{403}, Confidence: 0.75,
			Category: CategoryStatusCode, Description: "403 response alongside a CloudFront marker",
			GateHeader: "x-amz-cf-id",
		},
		{
			ID: "aws-429-pattern", Provider: "AWS", StatusCodes: []int{429}, Confidence: 0.80,
			Category: CategoryStatusCode, Description: "429 rate-limit response alongside a CloudFront marker",
			GateHeader: "x-amz-cf-id",
		},
		{
			ID: "aws-503-pattern", Provider: "AWS", StatusCodes: []int{503}, Confidence: 0.70,
			Category: CategoryStatusCode, Description: "503 service-unavailable response alongside a CloudFront marker",
			GateHeader: "x-amz-cf-id",
		},

		// --- Fastly ---
		{
			ID: "fastly-xserved-header", Provider: "Fastly", HeaderName: "x-served-by",
			HeaderPattern: mustRe(`(?i)cache-`), Confidence: 0.85,
			Category: CategoryHeaders, Description: "x-served-by header names a Fastly cache node",
		},
		{
			ID: "fastly-debug-path", Provider: "Fastly", HeaderName: "fastly-debug-path",
			HeaderPattern: mustRe(`.+`), Confidence: 0.90,
			Category: CategoryHeaders, Description: "fastly-debug-path header present",
		},
		{
			// x-cache is a generic caching header CloudFront also sets;
			// scored for Fastly only when its OWN value carries no
			// CloudFront marker (spec.md §4.1: "Fastly's x-cache ... match
			// only when the value does not contain a CloudFront marker").
			ID: "fastly-xcache-header", Provider: "Fastly", HeaderName: "x-cache",
			HeaderPattern: mustRe(`(?i)(HIT|MISS)`), Confidence: 0.50,
			Category: CategoryHeaders, Description: "x-cache header present (generic cache hit/miss)",
			GateHeader: "x-cache", GateNotPattern: mustRe(`(?i)cloudfront`),
		},
		{
			// fastly-restarts is Fastly's definitive signature (spec.md
			// §4.1's "definitive headers" class, 0.90-0.98) — no other CDN
			// sets it.
			ID: "fastly-restarts-header", Provider: "Fastly", HeaderName: "fastly-restarts",
			HeaderPattern: mustRe(`^\d+$`), Confidence: 0.98,
			Category: CategoryHeaders, Description: "fastly-restarts header present (definitive signature)",
		},
		{
			ID: "fastly-via-header", Provider: "Fastly", HeaderName: "via",
			HeaderPattern: mustRe(`(?i)1\.1 varnish`), Confidence: 0.90,
			Category: CategoryHeaders, Description: "via header names Varnish (Fastly's cache engine)",
		},
		{
			ID: "fastly-xcachehits-header", Provider: "Fastly", HeaderName: "x-cache-hits",
			HeaderPattern: mustRe(`.+`), Confidence: 0.85,
			Category: CategoryHeaders, Description: "x-cache-hits header present",
		},
		{
			ID: "fastly-xtimer-header", Provider: "Fastly", HeaderName: "x-timer",
			HeaderPattern: mustRe(`S\d+\.\d+,\s*VS\d+,\s*VE\d+`), Confidence: 0.80,
			Category: CategoryHeaders, Description: "x-timer header matches Fastly's timing format",
		},
		{
			// Status-code rule (spec.md §4.1's fifth canonical signature
			// class, 0.70-0.85 gated on a vendor header): a 403 only counts
			// as Fastly's own WAF block when a definitive Fastly marker is
			// also present, so a plain origin 403 can't masquerade as one.
			ID: "fastly-403-pattern", Provider: "Fastly", StatusCodes: []int{403}, Confidence: 0.80,
			Category: CategoryStatusCode, Description: "403 response alongside a Fastly marker",
			GateHeader: "fastly-restarts",
		},
		{
			ID: "fastly-429-pattern", Provider: "Fastly", StatusCodes: []int{429}, Confidence: 0.85,
			Category: CategoryStatusCode, Description: "429 rate-limit response alongside a Fastly marker",
			GateHeader: "fastly-restarts",
		},

		// --- Vercel ---
		{
			ID: "vercel-header", Provider: "Vercel", HeaderName: "x-vercel-id",
			HeaderPattern: mustRe(`.+`), Confidence: 0.90,
			Category: CategoryHeaders, Description: "x-vercel-id header present",
		},
		{
			ID: "vercel-cache-header", Provider: "Vercel", HeaderName: "x-vercel-cache",
			HeaderPattern: mustRe(`(?i)(HIT|MISS|STALE|PRERENDER)`), Confidence: 0.80,
			Category: CategoryHeaders, Description: "x-vercel-cache header present",
		},
		{
			ID: "vercel-server-header", Provider: "Vercel", HeaderName: "server",
			HeaderPattern: mustRe(`(?i)vercel`), Confidence: 0.85,
			Category: CategoryServer, Description: "Server header names Vercel",
		},
	}
	return sigs
}

// buildWeightTable derives the scorer's weight lookup from the signature
// confidences declared above, with specificity/reliability left at 1.0
// unless a signature is known to be a generic, easily-spoofed marker.
func buildWeightTable(sigs []Signature) map[string]EvidenceWeight {
	t := make(map[string]EvidenceWeight, len(sigs))
	for _, s := range sigs {
		specificity := 1.0
		reliability := 1.0
		switch s.ID {
		case "cf-connecting-ip-header", "cf-ipcountry-header", "fastly-xcache-header", "aws-xcache-header":
			// Present on many CDNs or trivially forgeable by an intermediate
			// proxy; down-weight specificity so a single such header can't
			// alone push a provider over threshold.
			specificity = 0.6
		case "fastly-via-header":
			// "via: 1.1 varnish" only names the caching software, not the
			// vendor — plenty of sites run Varnish directly, not behind
			// Fastly, so on its own it's a weaker signal than the headers
			// spec.md calls "definitive" (fastly-restarts, cf-ray, etc.),
			// matching seed scenario 3's "via-pattern alone is insufficient
			// to overcome the CloudFront markers."
			specificity = 0.2
		case "cf-js-body", "akamai-error-body", "aws-waf-block-body":
			reliability = 0.9
		}
		t[s.ID] = EvidenceWeight{Base: s.Confidence, Specificity: specificity, Reliability: reliability, Category: s.Category}
	}
	return t
}

// fallbackWeight returns the scorer's method-keyed default weight for
// evidence that carries no signature_id (DNS/timing/payload sources build
// Evidence without a signatureLibrary entry), per spec.md §4.7 step 1's
// fallback table.
func fallbackWeight(method Method) EvidenceWeight {
	switch method {
	case MethodHeader:
		return EvidenceWeight{Base: 0.85, Specificity: 0.8, Reliability: 0.9, Category: CategoryHeaders}
	case MethodStatusCode:
		return EvidenceWeight{Base: 0.75, Specificity: 0.7, Reliability: 0.85, Category: CategoryStatusCode}
	case MethodBody:
		return EvidenceWeight{Base: 0.55, Specificity: 0.6, Reliability: 0.8, Category: CategoryBody}
	case MethodTiming:
		return EvidenceWeight{Base: 0.60, Specificity: 0.7, Reliability: 0.8, Category: CategoryBehavioral}
	case MethodDNS:
		return EvidenceWeight{Base: 0.70, Specificity: 0.9, Reliability: 0.95, Category: CategoryNetwork}
	case MethodCertificate:
		return EvidenceWeight{Base: 0.75, Specificity: 0.8, Reliability: 0.9, Category: CategoryNetwork}
	case MethodPayload:
		return EvidenceWeight{Base: 0.80, Specificity: 0.75, Reliability: 0.85, Category: CategoryBehavioral}
	default:
		return EvidenceWeight{Base: 0.4, Specificity: 0.5, Reliability: 0.7, Category: CategoryBehavioral}
	}
}

// weightFor resolves a signature ID to its table entry, falling back to a
// method-keyed default when the evidence wasn't produced by the signature
// library (spec.md §4.7 step 2: "else fall back by method type").
func weightFor(signatureID string, method Method) EvidenceWeight {
	if w, ok := weightTable[signatureID]; ok {
		return w
	}
	return fallbackWeight(method)
}

// signaturesFor returns every signature declared for a provider, in
// declaration order (CDN-edge markers before behavioural/body ones).
func signaturesFor(provider string) []Signature {
	var out []Signature
	for _, s := range signatureLibrary {
		if s.Provider == provider {
			out = append(out, s)
		}
	}
	return out
}

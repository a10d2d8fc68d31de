package waf

import (
	"strconv"
	"strings"
)

// ProbeResponse is the subset of an HTTP response the passive detectors,
// timing analyser, and payload prober all need, decoupled from any one HTTP
// client library so C1's fasthttp usage stays an implementation detail.
type ProbeResponse struct {
	StatusCode int
	Headers    map[string]string // lower-cased header names
	Body       string
	Err        error
}

// Header looks up a response header case-insensitively.
func (r *ProbeResponse) Header(name string) (string, bool) {
	v, ok := r.Headers[strings.ToLower(name)]
	return v, ok
}

// PassiveDetector inspects a single already-fetched response and returns
// whatever Evidence it can find for a given provider. spec.md §9 asks for a
// registry of records implementing one method rather than a per-vendor
// inheritance hierarchy — SignatureProvider below is that single
// implementation, driven entirely by data in signatures.go.
type PassiveDetector interface {
	Detect(provider string, resp *ProbeResponse) []Evidence
}

// SignatureProvider is the sole PassiveDetector implementation: it evaluates
// every Signature declared for a provider against one response.
type SignatureProvider struct{}

// Detect implements PassiveDetector.
func (SignatureProvider) Detect(provider string, resp *ProbeResponse) []Evidence {
	if resp == nil {
		return nil
	}
	var evidence []Evidence
	for _, sig := range signaturesFor(provider) {
		if ev, ok := matchSignature(sig, resp); ok {
			evidence = append(evidence, ev)
		}
	}
	return evidence
}

func matchSignature(sig Signature, resp *ProbeResponse) (Evidence, bool) {
	if sig.GateHeader != "" {
		gateVal, present := resp.Header(sig.GateHeader)
		if sig.GateNotPattern != nil {
			// Gate requires the gate header to be ABSENT (or not match),
			// e.g. Fastly's x-cache only counts when no CloudFront marker
			// is also present.
			if present && sig.GateNotPattern.MatchString(gateVal) {
				return Evidence{}, false
			}
		} else if !present {
			// Gate requires the named header to be present as corroboration,
			// e.g. AWS's x-cache:cloudfront only counts alongside x-amz-cf-id.
			return Evidence{}, false
		}
	}

	switch {
	case sig.HeaderName != "":
		val, ok := resp.Header(sig.HeaderName)
		if !ok || (sig.HeaderPattern != nil && !sig.HeaderPattern.MatchString(val)) {
			return Evidence{}, false
		}
		return Evidence{
			Method:       MethodHeader,
			MethodDetail: sig.HeaderName,
			Confidence:   sig.Confidence,
			Description:  sig.Description,
			RawData:      val,
			SignatureID:  sig.ID,
		}, true

	case sig.BodyPattern != nil:
		match := sig.BodyPattern.FindString(resp.Body)
		if match == "" {
			return Evidence{}, false
		}
		return Evidence{
			Method:       MethodBody,
			MethodDetail: "body",
			Confidence:   sig.Confidence,
			Description:  sig.Description,
			RawData:      match,
			SignatureID:  sig.ID,
		}, true

	case len(sig.StatusCodes) > 0:
		for _, code := range sig.StatusCodes {
			if resp.StatusCode == code {
				return Evidence{
					Method:       MethodStatusCode,
					MethodDetail: "status_code",
					Confidence:   sig.Confidence,
					Description:  sig.Description,
					RawData:      strconv.Itoa(resp.StatusCode),
					SignatureID:  sig.ID,
				}, true
			}
		}
		return Evidence{}, false
	}
	return Evidence{}, false
}

// Package waf implements WAF/CDN fingerprinting and smoke-testing: a parallel
// multi-signal evidence pipeline (passive response inspection, DNS, timing,
// payload probing) fused by a weighted confidence scorer into a best-guess
// WAF and CDN for a given origin.
package waf

import (
	"regexp"
	"time"
)

// Method identifies the kind of observation an Evidence item carries.
type Method string

const (
	MethodHeader      Method = "header"
	MethodBody        Method = "body"
	MethodStatusCode  Method = "status_code"
	MethodDNS         Method = "dns"
	MethodTiming      Method = "timing"
	MethodCertificate Method = "certificate"
	MethodPayload     Method = "payload"
)

// Category groups Evidence for the Confidence Scorer's bonus/penalty rules.
type Category string

const (
	CategoryHeaders    Category = "headers"
	CategoryServer     Category = "server"
	CategoryBody       Category = "body"
	CategoryStatusCode Category = "status_code"
	CategoryBehavioral Category = "behavioral"
	CategoryErrorPage  Category = "error_page"
	CategoryNetwork    Category = "network"
)

// allCategories lists every category the scorer initializes a subtotal for.
var allCategories = []Category{
	CategoryHeaders, CategoryServer, CategoryBody, CategoryStatusCode,
	CategoryBehavioral, CategoryErrorPage, CategoryNetwork,
}

// Evidence is one observation supporting a provider hypothesis.
type Evidence struct {
	Method       Method  `json:"method" yaml:"method"`
	MethodDetail string  `json:"method_detail,omitempty" yaml:"method_detail,omitempty"`
	Confidence   float64 `json:"confidence" yaml:"confidence"`
	Description  string  `json:"description" yaml:"description"`
	RawData      string  `json:"raw_data" yaml:"raw_data"`
	SignatureID  string  `json:"signature_id" yaml:"signature_id"`
}

// ProviderKind classifies what a Provider can be recognized as.
type ProviderKind string

const (
	ProviderKindWAF  ProviderKind = "waf"
	ProviderKindCDN  ProviderKind = "cdn"
	ProviderKindBoth ProviderKind = "both"
)

// IsWAF reports whether a provider of this kind is eligible for the WAF slot.
func (k ProviderKind) IsWAF() bool { return k == ProviderKindWAF || k == ProviderKindBoth }

// IsCDN reports whether a provider of this kind is eligible for the CDN slot.
func (k ProviderKind) IsCDN() bool { return k == ProviderKindCDN || k == ProviderKindBoth }

// Provider is a declarative descriptor for a recognizable WAF/CDN vendor.
type Provider struct {
	Name           string       `json:"name" yaml:"name"`
	Kind           ProviderKind `json:"kind" yaml:"kind"`
	Priority       int          `json:"priority" yaml:"priority"`
	BaseConfidence float64      `json:"base_confidence" yaml:"base_confidence"`
	Enabled        bool         `json:"enabled" yaml:"enabled"`
}

// EvidenceWeight is the scorer's per-signature weighting record (§4.7).
type EvidenceWeight struct {
	Base        float64  `json:"base"`
	Specificity float64  `json:"specificity"`
	Reliability float64  `json:"reliability"`
	Category    Category `json:"category"`
}

// Effective returns the product of base, specificity, and reliability.
func (w EvidenceWeight) Effective() float64 {
	return w.Base * w.Specificity * w.Reliability
}

// Signature is a single match rule bound to a stable signature ID.
//
// A signature targets exactly one of: a response header (HeaderName set), a
// body regex (BodyPattern set), a status code gated on a header being present
// (StatusCodes + GateHeader set), or (owned by the DNS analyser) a CNAME
// regex. GateHeader, when set, is an extra co-occurrence check against the
// full response (the named header must be present, or, with GateNotPattern,
// must not match that pattern) — used for the shared-header disambiguation
// rules in spec.md §4.1 (Fastly's x-cache vs a CloudFront marker, etc.).
type Signature struct {
	ID             string
	Provider       string
	HeaderName     string
	HeaderPattern  *regexp.Regexp
	BodyPattern    *regexp.Regexp
	StatusCodes    []int
	GateHeader     string
	GateNotPattern *regexp.Regexp
	Confidence     float64
	Category       Category
	Description    string
}

// ProviderScore is the Confidence Scorer's output for one provider.
type ProviderScore struct {
	Provider              string             `json:"provider" yaml:"provider"`
	Score                 float64            `json:"score" yaml:"score"`
	Level                 string             `json:"level" yaml:"level"`
	CategoryBreakdown     map[Category]float64 `json:"category_breakdown" yaml:"category_breakdown"`
	PositiveEvidenceCount int                `json:"positive_evidence_count" yaml:"positive_evidence_count"`
	NegativeEvidenceCount int                `json:"negative_evidence_count" yaml:"negative_evidence_count"`
}

// DetectedProvider names the winner of a WAF or CDN slot.
type DetectedProvider struct {
	Name       string  `json:"name" yaml:"name"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Metadata carries ambient info about the detection run.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	ToolVersion string    `json:"tool_version" yaml:"tool_version"`
	UserAgent   string    `json:"user_agent" yaml:"user_agent"`
	Warnings    []string  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// DetectionResult is the final output of one Engine.Detect call.
type DetectionResult struct {
	URL              string                `json:"url" yaml:"url"`
	WAF              *DetectedProvider     `json:"waf,omitempty" yaml:"waf,omitempty"`
	CDN              *DetectedProvider     `json:"cdn,omitempty" yaml:"cdn,omitempty"`
	ProviderScores   map[string]ProviderScore `json:"provider_scores" yaml:"provider_scores"`
	EvidenceMap      map[string][]Evidence `json:"evidence_map" yaml:"evidence_map"`
	DetectionTimeMS  int64                 `json:"detection_time_ms" yaml:"detection_time_ms"`
	Metadata         Metadata              `json:"metadata" yaml:"metadata"`
}

// PayloadCategory groups attack payloads by technique.
type PayloadCategory string

const (
	CategoryXSSBasic          PayloadCategory = "xss_basic"
	CategoryXSSAdvanced       PayloadCategory = "xss_advanced"
	CategorySQLiBasic         PayloadCategory = "sqli_basic"
	CategorySQLiAdvanced      PayloadCategory = "sqli_advanced"
	CategoryPathTraversal     PayloadCategory = "path_traversal"
	CategoryCommandInjection  PayloadCategory = "command_injection"
	CategoryFileUpload        PayloadCategory = "file_upload"
	CategoryScannerDetection  PayloadCategory = "scanner_detection"
	CategoryEnumeration       PayloadCategory = "enumeration"
)

// Classification is the outcome of one payload probe.
type Classification string

const (
	ClassificationBlocked     Classification = "blocked"
	ClassificationAllowed     Classification = "allowed"
	ClassificationError       Classification = "error"
	ClassificationRateLimited Classification = "rate_limited"
	ClassificationChallenge   Classification = "challenge"
)

// PayloadResult is the outcome of probing the origin with one attack payload.
type PayloadResult struct {
	Category       PayloadCategory `json:"category" yaml:"category"`
	Payload        string          `json:"payload" yaml:"payload"`
	StatusCode     int             `json:"status_code" yaml:"status_code"`
	ResponseTimeMS int64           `json:"response_time_ms" yaml:"response_time_ms"`
	Classification Classification  `json:"classification" yaml:"classification"`
	Evidence       []string        `json:"evidence" yaml:"evidence"`
	WAFHints       []string        `json:"waf_hints" yaml:"waf_hints"`
}

// WafMode is the smoke-test's inferred operational mode for the WAF.
type WafMode string

const (
	WafModeBlocking   WafMode = "blocking"
	WafModeMonitoring WafMode = "monitoring"
	WafModeMixed      WafMode = "mixed"
	WafModeUnknown    WafMode = "unknown"
)

// SmokeTestSummary aggregates PayloadResult classifications.
type SmokeTestSummary struct {
	Total              int     `json:"total" yaml:"total"`
	BlockedCount       int     `json:"blocked_count" yaml:"blocked_count"`
	AllowedCount       int     `json:"allowed_count" yaml:"allowed_count"`
	ErrorCount         int     `json:"error_count" yaml:"error_count"`
	RateLimitedCount   int     `json:"rate_limited_count" yaml:"rate_limited_count"`
	ChallengeCount     int     `json:"challenge_count" yaml:"challenge_count"`
	EffectivenessPct   float64 `json:"effectiveness_pct" yaml:"effectiveness_pct"`
	MeanResponseTimeMS float64 `json:"mean_response_time_ms" yaml:"mean_response_time_ms"`
}

// SmokeTestResult is the per-URL smoke-test output (C9).
type SmokeTestResult struct {
	URL             string           `json:"url" yaml:"url"`
	Results         []PayloadResult  `json:"results" yaml:"results"`
	Summary         SmokeTestSummary `json:"summary" yaml:"summary"`
	WafMode         WafMode          `json:"waf_mode" yaml:"waf_mode"`
	IdentifiedVendor string          `json:"identified_vendor,omitempty" yaml:"identified_vendor,omitempty"`
	Recommendations []string         `json:"recommendations" yaml:"recommendations"`
}

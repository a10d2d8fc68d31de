package waf

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"evasor/internal/logging"
	"evasor/internal/version"
)

// Config tunes the Detection Engine. Zero-value fields fall back to
// DefaultConfig's values via NewEngine.
type Config struct {
	UserAgent        string
	EnableTiming     bool
	EnablePayload    bool
	EnableDNS        bool
	BatchWorkers     int
	BatchStartStagger time.Duration
	Providers        []Provider
	Catalogue        map[PayloadCategory][]string
}

// DefaultConfig returns the engine configuration used when a caller doesn't
// need anything non-standard — every analyser enabled, the default provider
// set and payload catalogue, a modest batch worker count.
func DefaultConfig() Config {
	return Config{
		UserAgent:         defaultUserAgent,
		EnableTiming:      true,
		EnablePayload:     true,
		EnableDNS:         true,
		BatchWorkers:      4,
		BatchStartStagger: 150 * time.Millisecond,
		Providers:         DefaultProviders(),
		Catalogue:         DefaultCatalogue(),
	}
}

// Engine is the C8 Detection Engine: it fans out the four evidence sources
// concurrently for one target, fuses them through the Scorer, and selects
// the WAF/CDN slot winners.
type Engine struct {
	cfg       Config
	registry  *Registry
	prober    *Prober
	dns       *DNSAnalyser
	timing    *TimingAnalyser
	payload   *PayloadProber
	passive   PassiveDetector
	scorer    *Scorer
}

// NewEngine builds an Engine from cfg, filling any zero-value fields from
// DefaultConfig.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.BatchWorkers <= 0 {
		cfg.BatchWorkers = def.BatchWorkers
	}
	if cfg.BatchStartStagger <= 0 {
		cfg.BatchStartStagger = def.BatchStartStagger
	}
	if cfg.Providers == nil {
		cfg.Providers = def.Providers
	}
	if cfg.Catalogue == nil {
		cfg.Catalogue = def.Catalogue
	}

	prober := NewProber(cfg.UserAgent)
	return &Engine{
		cfg:      cfg,
		registry: NewRegistry(cfg.Providers),
		prober:   prober,
		dns:      NewDNSAnalyser(nil),
		timing:   NewTimingAnalyser(prober),
		payload:  NewPayloadProber(prober, cfg.Catalogue),
		passive:  SignatureProvider{},
		scorer:   NewScorer(),
	}
}

// ListProviders returns the engine's active provider descriptors.
func (e *Engine) ListProviders() []Provider {
	return e.registry.List()
}

// Detect runs the full evidence pipeline against one URL and returns the
// fused DetectionResult. Every registered provider (plus the synthetic
// DnsAnalysis/TimingAnalysis/PayloadAnalysis sources) always gets an entry
// in EvidenceMap, even when empty, so callers can rely on its keys.
func (e *Engine) Detect(ctx context.Context, url string) (*DetectionResult, error) {
	if url == "" {
		return nil, &InvalidInputError{Field: "url", Reason: "must not be empty"}
	}
	start := time.Now()

	var (
		mu          sync.Mutex
		passiveResp *ProbeResponse
		dnsEvidence []Evidence
		timingEv    []Evidence
		payloadRes  []PayloadResult
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp := e.prober.Fetch(gctx, url)
		mu.Lock()
		passiveResp = resp
		mu.Unlock()
		return nil
	})

	if e.cfg.EnableDNS {
		g.Go(func() error {
			host := ExtractHost(url)
			ev := e.safeDNS(gctx, host)
			mu.Lock()
			dnsEvidence = ev
			mu.Unlock()
			return nil
		})
	}

	if e.cfg.EnableTiming {
		g.Go(func() error {
			ev := e.safeTiming(gctx, url)
			mu.Lock()
			timingEv = ev
			mu.Unlock()
			return nil
		})
	}

	if e.cfg.EnablePayload {
		g.Go(func() error {
			res := e.safePayload(gctx, url)
			mu.Lock()
			payloadRes = res
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("detection pipeline: %w", err)
	}
	if ctx.Err() != nil {
		return nil, &CancelledError{Op: "Detect"}
	}

	payloadEv := ToEvidence(payloadRes)

	evidenceMap := make(map[string][]Evidence)
	for _, p := range e.registry.List() {
		combined := append([]Evidence{}, e.safePassive(p.Name, passiveResp)...)
		combined = append(combined, crossCutEvidence(p.Name, dnsEvidence, payloadEv)...)
		evidenceMap[p.Name] = combined
	}
	evidenceMap["DnsAnalysis"] = dnsEvidence
	evidenceMap["TimingAnalysis"] = timingEv
	evidenceMap["PayloadAnalysis"] = payloadEv

	var headers map[string]string
	if passiveResp != nil {
		headers = passiveResp.Headers
	}

	scores := make(map[string]ProviderScore, len(e.registry.List()))
	for _, p := range e.registry.List() {
		scores[p.Name] = e.scorer.Score(p.Name, evidenceMap[p.Name], headers)
	}

	result := &DetectionResult{
		URL:             url,
		ProviderScores:  scores,
		EvidenceMap:     evidenceMap,
		DetectionTimeMS: time.Since(start).Milliseconds(),
		Metadata: Metadata{
			Timestamp:   time.Now().UTC(),
			ToolVersion: version.Version,
			UserAgent:   e.cfg.UserAgent,
		},
	}
	if passiveResp != nil && passiveResp.Err != nil {
		result.Metadata.Warnings = append(result.Metadata.Warnings, "probe error: "+passiveResp.Err.Error())
	}

	e.selectSlots(result)
	return result, nil
}

// crossCutEvidence attributes DNS evidence naming this provider, plus the
// payload prober's vendor-summary Evidence (signature_id
// payload_detection_<vendor>, see PayloadProber.ToEvidence) implicating it,
// into the provider's own scoring pool. Timing evidence is deliberately
// excluded: per spec.md §4.4/§9 the default signature library never
// attaches a vendor to a timing observation, so it stays confined to the
// synthetic TimingAnalysis bucket and never lifts a specific provider's
// score.
func crossCutEvidence(provider string, dnsEv, payloadEv []Evidence) []Evidence {
	var out []Evidence
	for _, ev := range dnsEv {
		if ev.MethodDetail == provider {
			out = append(out, ev)
		}
	}
	for _, ev := range payloadEv {
		if ev.SignatureID == "payload_detection_"+provider {
			out = append(out, ev)
		}
	}
	return out
}

// selectSlots picks the WAF and CDN winners from the fused scores: the
// argmax score among eligible providers, ties broken by configured
// priority (lower wins) then lexicographically by name. A slot stays unset
// when the maximum score is 0 (spec.md §4.6 step 5) — there is no separate
// confidence floor.
func (e *Engine) selectSlots(result *DetectionResult) {
	var bestWAF, bestCDN *DetectedProvider
	var bestWAFPriority, bestCDNPriority int
	var bestWAFName, bestCDNName string

	betterThan := func(score float64, name string, priority int, bestConf float64, bestName string, bestPriority int) bool {
		if score != bestConf {
			return score > bestConf
		}
		if priority != bestPriority {
			return priority < bestPriority
		}
		return name < bestName
	}

	for _, p := range e.registry.List() {
		score, ok := result.ProviderScores[p.Name]
		if !ok || score.Score <= 0 {
			continue
		}
		if p.Kind.IsWAF() {
			if bestWAF == nil || betterThan(score.Score, p.Name, p.Priority, bestWAF.Confidence, bestWAFName, bestWAFPriority) {
				bestWAF = &DetectedProvider{Name: p.Name, Confidence: score.Score}
				bestWAFPriority, bestWAFName = p.Priority, p.Name
			}
		}
		if p.Kind.IsCDN() {
			if bestCDN == nil || betterThan(score.Score, p.Name, p.Priority, bestCDN.Confidence, bestCDNName, bestCDNPriority) {
				bestCDN = &DetectedProvider{Name: p.Name, Confidence: score.Score}
				bestCDNPriority, bestCDNName = p.Priority, p.Name
			}
		}
	}
	result.WAF = bestWAF
	result.CDN = bestCDN
}

// safeDNS, safeTiming, safePayload, and safePassive isolate a plugin panic
// (a misbehaving provider implementation must never take down the whole
// detection run) by recovering and logging, returning no evidence for that
// source on panic.
func (e *Engine) safeDNS(ctx context.Context, host string) (ev []Evidence) {
	defer func() {
		if r := recover(); r != nil {
			logging.Errorf("dns analyser panic: %v", r)
		}
	}()
	return e.dns.Analyse(ctx, host)
}

func (e *Engine) safeTiming(ctx context.Context, url string) (ev []Evidence) {
	defer func() {
		if r := recover(); r != nil {
			logging.Errorf("timing analyser panic: %v", r)
		}
	}()
	return e.timing.Analyse(ctx, url)
}

func (e *Engine) safePayload(ctx context.Context, url string) (res []PayloadResult) {
	defer func() {
		if r := recover(); r != nil {
			logging.Errorf("payload prober panic: %v", r)
		}
	}()
	return e.payload.Probe(ctx, url)
}

func (e *Engine) safePassive(provider string, resp *ProbeResponse) (ev []Evidence) {
	defer func() {
		if r := recover(); r != nil {
			logging.Errorf("passive detector panic for %s: %v", provider, r)
		}
	}()
	return e.passive.Detect(provider, resp)
}

// DetectBatch runs Detect over every URL with a bounded worker pool,
// staggering each worker's start slightly to avoid a thundering-herd burst
// against shared infrastructure (e.g. when scanning many hostnames behind
// the same CDN). Returns a map keyed by URL; a per-URL error doesn't abort
// the batch — it's logged and that URL still gets an entry in the result
// map, an empty DetectionResult with both slots unset (spec.md §4.6 batch
// mode: "produce a DetectionResult with both slots unset and empty
// evidence"), so callers can rely on every requested URL being a key.
func (e *Engine) DetectBatch(ctx context.Context, urls []string, workers int) (map[string]*DetectionResult, error) {
	if workers <= 0 {
		workers = e.cfg.BatchWorkers
	}

	results := make(map[string]*DetectionResult, len(urls))
	var mu sync.Mutex

	jobs := make(chan string, len(urls))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			time.Sleep(time.Duration(workerID) * e.cfg.BatchStartStagger)
			for url := range jobs {
				res, err := e.Detect(ctx, url)
				if err != nil {
					logging.Errorf("detect %s: %v", url, err)
					res = e.emptyResult(url)
				}
				mu.Lock()
				results[url] = res
				mu.Unlock()
			}
		}(i)
	}

	for _, u := range urls {
		jobs <- u
	}
	close(jobs)
	wg.Wait()

	if ctx.Err() != nil {
		return results, &CancelledError{Op: "DetectBatch"}
	}
	return results, nil
}

// emptyResult builds the degraded DetectionResult a failed per-URL Detect
// call falls back to within DetectBatch: every registered provider and
// synthetic source keyed with an empty Evidence list, both slots unset.
func (e *Engine) emptyResult(url string) *DetectionResult {
	evidenceMap := make(map[string][]Evidence)
	for _, p := range e.registry.List() {
		evidenceMap[p.Name] = nil
	}
	evidenceMap["DnsAnalysis"] = nil
	evidenceMap["TimingAnalysis"] = nil
	evidenceMap["PayloadAnalysis"] = nil
	return &DetectionResult{
		URL:         url,
		EvidenceMap: evidenceMap,
		Metadata: Metadata{
			Timestamp:   time.Now().UTC(),
			ToolVersion: version.Version,
			UserAgent:   e.cfg.UserAgent,
		},
	}
}

package waf

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// RenderDetectionReport renders a DetectionResult as a colorized terminal
// report, following the section/table style of the teacher's
// report/pretty_terminal.go.
func RenderDetectionReport(result *DetectionResult) string {
	if result == nil {
		return "no detection result"
	}
	var b strings.Builder

	header := color.New(color.FgHiWhite, color.Bold, color.BgBlue)
	header.Fprintf(&b, " WAF/CDN DETECTION REPORT ")
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Target:          %s\n", result.URL)
	fmt.Fprintf(&b, "Detection time:  %dms\n", result.DetectionTimeMS)
	fmt.Fprintf(&b, "Tool version:    %s\n\n", result.Metadata.ToolVersion)

	if result.WAF != nil {
		color.New(color.FgRed, color.Bold).Fprintf(&b, "WAF detected:    %s (%.0f%% confidence)\n", result.WAF.Name, result.WAF.Confidence*100)
	} else {
		b.WriteString("WAF detected:    none\n")
	}
	if result.CDN != nil {
		color.New(color.FgCyan, color.Bold).Fprintf(&b, "CDN detected:    %s (%.0f%% confidence)\n", result.CDN.Name, result.CDN.Confidence*100)
	} else {
		b.WriteString("CDN detected:    none\n")
	}
	b.WriteString("\n")

	names := make([]string, 0, len(result.ProviderScores))
	for name := range result.ProviderScores {
		names = append(names, name)
	}
	sort.Strings(names)

	color.New(color.Underline).Fprintln(&b, "Provider scores:")
	for _, name := range names {
		score := result.ProviderScores[name]
		fmt.Fprintf(&b, "  %-12s %.3f  (%s, +%d/-%d evidence)\n",
			name, score.Score, score.Level, score.PositiveEvidenceCount, score.NegativeEvidenceCount)
	}

	if len(result.Metadata.Warnings) > 0 {
		b.WriteString("\n")
		color.New(color.FgYellow).Fprintln(&b, "Warnings:")
		for _, w := range result.Metadata.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	if result.WAF != nil {
		b.WriteString("\nSuggested evasion techniques for this WAF:\n")
		for _, ev := range GetOptimalEvasions(result.WAF.Name) {
			fmt.Fprintf(&b, "  - %s\n", ev)
		}
	}

	return b.String()
}

// RenderSmokeTestReport renders a SmokeTestResult as a colorized terminal
// report.
func RenderSmokeTestReport(result SmokeTestResult) string {
	var b strings.Builder

	header := color.New(color.FgHiWhite, color.Bold, color.BgGreen)
	header.Fprintf(&b, " WAF SMOKE TEST REPORT ")
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Target:          %s\n", result.URL)
	fmt.Fprintf(&b, "Payloads sent:   %d\n", result.Summary.Total)
	fmt.Fprintf(&b, "Effectiveness:   %.1f%%\n", result.Summary.EffectivenessPct)
	fmt.Fprintf(&b, "Inferred mode:   %s\n", modeColor(result.WafMode))
	if result.IdentifiedVendor != "" {
		fmt.Fprintf(&b, "Likely vendor:   %s\n", result.IdentifiedVendor)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Blocked: %d  RateLimited: %d  Challenge: %d  Allowed: %d  Error: %d\n\n",
		result.Summary.BlockedCount, result.Summary.RateLimitedCount, result.Summary.ChallengeCount,
		result.Summary.AllowedCount, result.Summary.ErrorCount)

	color.New(color.Underline).Fprintln(&b, "Recommendations:")
	for _, r := range result.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", r)
	}

	return b.String()
}

func modeColor(mode WafMode) string {
	switch mode {
	case WafModeBlocking:
		return color.RedString(string(mode))
	case WafModeMonitoring:
		return color.YellowString(string(mode))
	case WafModeMixed:
		return color.CyanString(string(mode))
	default:
		return string(mode)
	}
}

// MarshalJSON renders any of DetectionResult/SmokeTestResult (or a batch map
// of either) as indented JSON, following the teacher's report formats for
// machine consumption.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// MarshalYAML renders any of DetectionResult/SmokeTestResult as YAML,
// reusing the teacher's yaml.v3 dependency rather than hand-rolling a
// serializer.
func MarshalYAML(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

// evasionCatalogue maps a detected WAF name to the evasion technique names
// this tool's evasions/* packages can apply, ported from the teacher's
// original WAFType-keyed switch and adapted to plain provider name strings.
var evasionCatalogue = map[string][]string{
	"CloudFlare":  {"unicode", "mixedcase", "bestfit", "doubleurl"},
	"AWS":         {"doubleurl", "unicode", "linefolding"},
	"Akamai":      {"bestfit", "mixedcase", "hexencode"},
	"Imperva":     {"unicode", "doubleurl"},
	"ModSecurity": {"mixedcase", "hexencode", "octalencode"},
	"Fastly":      {"doubleurl", "linefolding"},
	"Vercel":      {"unicode", "mixedcase"},
}

// GetOptimalEvasions returns the evasion technique names this tool's
// payload generator suggests for a detected WAF/CDN name, falling back to a
// generic set when the name isn't in the catalogue.
func GetOptimalEvasions(name string) []string {
	if techniques, ok := evasionCatalogue[name]; ok {
		return techniques
	}
	return []string{"unicode", "mixedcase", "doubleurl"}
}

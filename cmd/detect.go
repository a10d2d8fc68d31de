package cmd

import (
	"context"
	"fmt"
	"time"

	"evasor/internal/waf"

	"github.com/spf13/cobra"
)

var (
	detectTargetURL string
	detectTimeout   time.Duration
	detectOutput    string
	detectNoTiming  bool
	detectNoPayload bool
	detectNoDNS     bool
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Fingerprint the WAF/CDN fronting a target URL",
	Run: func(cmd *cobra.Command, args []string) {
		if detectTargetURL == "" {
			fmt.Println("missing required --url flag")
			return
		}

		cfg := waf.DefaultConfig()
		cfg.EnableTiming = !detectNoTiming
		cfg.EnablePayload = !detectNoPayload
		cfg.EnableDNS = !detectNoDNS

		engine := waf.NewEngine(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), detectTimeout)
		defer cancel()

		result, err := engine.Detect(ctx, detectTargetURL)
		if err != nil {
			fmt.Printf("detection failed: %v\n", err)
			return
		}

		switch detectOutput {
		case "json":
			out, _ := waf.MarshalJSON(result)
			fmt.Println(string(out))
		case "yaml":
			out, _ := waf.MarshalYAML(result)
			fmt.Println(string(out))
		default:
			fmt.Println(waf.RenderDetectionReport(result))
		}
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().StringVarP(&detectTargetURL, "url", "u", "", "Target URL to fingerprint")
	detectCmd.Flags().DurationVar(&detectTimeout, "timeout", 30*time.Second, "Overall detection timeout")
	detectCmd.Flags().StringVarP(&detectOutput, "output", "o", "text", "Output format: text, json, yaml")
	detectCmd.Flags().BoolVar(&detectNoTiming, "no-timing", false, "Disable timing analysis")
	detectCmd.Flags().BoolVar(&detectNoPayload, "no-payload", false, "Disable payload probing")
	detectCmd.Flags().BoolVar(&detectNoDNS, "no-dns", false, "Disable DNS CNAME analysis")
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"evasor/internal/waf"

	"github.com/spf13/cobra"
)

var (
	smokeTargetURL string
	smokeOutput    string
	smokeTimeout   time.Duration
)

var smoketestCmd = &cobra.Command{
	Use:   "smoketest",
	Short: "Probe a target with a catalogue of attack payloads and report WAF effectiveness",
	Run: func(cmd *cobra.Command, args []string) {
		if smokeTargetURL == "" {
			fmt.Println("missing required --url flag")
			return
		}

		prober := waf.NewProber("")
		payloadProber := waf.NewPayloadProber(prober, nil)
		test := waf.NewSmokeTest(payloadProber)

		ctx, cancel := context.WithTimeout(context.Background(), smokeTimeout)
		defer cancel()

		result := test.Run(ctx, smokeTargetURL)

		switch smokeOutput {
		case "json":
			out, _ := waf.MarshalJSON(result)
			fmt.Println(string(out))
		case "yaml":
			out, _ := waf.MarshalYAML(result)
			fmt.Println(string(out))
		default:
			fmt.Println(waf.RenderSmokeTestReport(result))
		}
	},
}

func init() {
	rootCmd.AddCommand(smoketestCmd)
	smoketestCmd.Flags().StringVarP(&smokeTargetURL, "url", "u", "", "Target URL to smoke test")
	smoketestCmd.Flags().StringVarP(&smokeOutput, "output", "o", "text", "Output format: text, json, yaml")
	smoketestCmd.Flags().DurationVar(&smokeTimeout, "timeout", 60*time.Second, "Overall smoke-test timeout")
}

package version

import (
	"fmt"
	"runtime"
)

// These variables are meant to be overridden at build time via -ldflags, e.g.:
//
//	-X evasor/internal/version.Version=v1.2.3 \
//	-X evasor/internal/version.BuildDate=2025-08-09T00:00:00Z \
//	-X evasor/internal/version.GitCommit=abcdef1
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Compiler  string `json:"compiler"`
}

// GetBuildInfo returns comprehensive build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Compiler:  runtime.Compiler,
	}
}

// GetVersionString returns a formatted version string
func GetVersionString() string {
	return fmt.Sprintf("ObfusKit v%s (built %s)", Version, BuildDate)
}

// GetDetailedVersionString returns comprehensive version information
func GetDetailedVersionString() string {
	info := GetBuildInfo()
	return fmt.Sprintf(`ObfusKit - Enterprise WAF Testing Platform
Version: %s
Build Date: %s
Git Commit: %s
Go Version: %s
Platform: %s
Compiler: %s`,
		info.Version,
		info.BuildDate,
		info.GitCommit,
		info.GoVersion,
		info.Platform,
		info.Compiler,
	)
}

// GetStartupBanner returns the application startup banner
func GetStartupBanner() string {
	return fmt.Sprintf(`
â•”â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•—
â•‘                    ğŸ›¡ï¸  OBFUSKIT v%s                     â•‘
â•‘              Enterprise WAF Testing Platform              â•‘
â•‘                                                           â•‘
â•‘  ğŸ¯ Multi-Attack Testing    ğŸš€ Parallel Processing       â•‘
â•‘  ğŸ§  WAF Intelligence       ğŸ“Š Advanced Analytics         â•‘
â•‘  ğŸ”§ Batch Operations       âš¡ 10x Performance Boost      â•‘
â•šâ•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•â•
`, Version)
}

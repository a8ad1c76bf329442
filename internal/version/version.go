package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/kism/smart-rom-sync/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/kism/smart-rom-sync/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/kism/smart-rom-sync/internal/version.Date={{.Date}}
)

const (
	ProgramName = "smart-rom-sync"
	URL         = "https://github.com/kism/smart-rom-sync"
)

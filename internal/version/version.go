package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/sogladev/mpqbuild/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/sogladev/mpqbuild/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/sogladev/mpqbuild/internal/version.Date={{.Date}}
)

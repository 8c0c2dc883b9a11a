package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/kevgo/tertestrial/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/kevgo/tertestrial/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/kevgo/tertestrial/internal/version.Date={{.Date}}
)

package build

// set at build time with -ldflags "-X github.com/sergeii/sg41/cmd/sg41/build.Version=..."
var (
	Version = "development" // nolint: gochecknoglobals
	Commit  = "unknown"     // nolint: gochecknoglobals
	Time    = "unknown"     // nolint: gochecknoglobals
)

// Package bininfo holds build metadata, injected at link time:
//
//	go build -ldflags "-X github.com/visitstats/dashboard/internal/pkg/bininfo.Version=v1.2.0"
package bininfo

var (
	// Version is reported by /api/_/bininfo, the CLI and every telemetry exporter.
	Version = "v0.0.0"

	// BuildTime is an RFC 3339 timestamp.
	BuildTime = "1970-01-01T00:00:00Z"
)

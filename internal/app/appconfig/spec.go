package appconfig

import (
	"time"

	"github.com/visitstats/dashboard/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving dashboard and API requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// log every executed query. See internal/server/httpserver/http.go for the actual implementation details.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"jaeger"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// Source selects where visits are read from: "postgres" reads the hosted database at DatabaseURL,
	// "csv" loads CSVPath into an in-process SQLite database at startup.
	Source string `split_words:"true" default:"postgres"`

	// DatabaseURL is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	// Credentials are expected to be part of the URL.
	DatabaseURL string `split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	// DatabaseConnectAttempts is how many times the startup ping is tried before giving up.
	DatabaseConnectAttempts uint `split_words:"true" default:"5"`

	// DatabaseConnectDelay is the initial delay in-between startup ping attempts. It backs off exponentially.
	DatabaseConnectDelay time.Duration `split_words:"true" default:"500ms"`

	BunDebugVerbose bool `split_words:"true"`

	// VisitsTable is the name of the table holding one row per visit.
	VisitsTable string `required:"true" split_words:"true" default:"visits"`

	// CSVPath is the location of the visits CSV when Source is "csv". Either a local file path
	// or an s3://bucket/key URL.
	CSVPath string `envconfig:"CSV_PATH"`

	// S3Endpoint overrides the S3 endpoint, for S3 compatible storages such as R2 or MinIO.
	S3Endpoint string `envconfig:"S3_ENDPOINT"`

	// S3Region is the region of the bucket holding CSVPath.
	S3Region string `envconfig:"S3_REGION" default:"auto"`

	// S3AccessKey and S3SecretKey are static credentials for the bucket. When left empty, the default
	// AWS credential chain is used.
	S3AccessKey string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY"`

	// AggregateIn selects where aggregates are computed: "database" pushes GROUP BY down to SQL,
	// "memory" fetches every visit and aggregates in-process.
	AggregateIn string `split_words:"true" default:"database"`

	// FeaturedRestaurant is the restaurant the dashboard answers per-restaurant questions for
	// when none is selected.
	FeaturedRestaurant string `split_words:"true" default:"the-restaurant-at-the-end-of-the-universe"`

	// Currency is the ISO 4217 code food costs are recorded in.
	Currency string `required:"true" split_words:"true" default:"USD"`

	// QueryTimeout bounds every aggregate query.
	QueryTimeout time.Duration `required:"true" split_words:"true" default:"15s"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// DatadogProfilerEnabled to indicate whether to enable Datadog profiler.
	DatadogProfilerEnabled bool `split_words:"true" default:"false"`

	// DatadogProfilerAgentAddress is the address of the Datadog profiler agent.
	DatadogProfilerAgentAddress string `split_words:"true" default:"localhost:8126"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}

package appconfig

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/currency"
)

const (
	SourcePostgres = "postgres"
	SourceCSV      = "csv"

	AggregateInDatabase = "database"
	AggregateInMemory   = "memory"
)

var tracingExporters = []string{"jaeger", "otlp", "stdout"}

func (c *ConfigSpec) Validate() error {
	switch c.Source {
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("source %q requires VISITSTATS_DATABASE_URL to be set", c.Source)
		}
	case SourceCSV:
		if c.CSVPath == "" {
			return fmt.Errorf("source %q requires VISITSTATS_CSV_PATH to be set", c.Source)
		}
	default:
		return fmt.Errorf("unknown source %q: expect one of %s, %s", c.Source, SourcePostgres, SourceCSV)
	}

	if !lo.Contains([]string{AggregateInDatabase, AggregateInMemory}, c.AggregateIn) {
		return fmt.Errorf("unknown aggregation mode %q: expect one of %s, %s", c.AggregateIn, AggregateInDatabase, AggregateInMemory)
	}

	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("invalid currency %q: %w", c.Currency, err)
	}

	if strings.TrimSpace(c.VisitsTable) == "" {
		return fmt.Errorf("visits table name must not be empty")
	}

	for _, exporter := range c.TracingExporters {
		if !lo.Contains(tracingExporters, exporter) {
			return fmt.Errorf("unknown tracing exporter %q: expect any of %s", exporter, strings.Join(tracingExporters, ", "))
		}
	}

	return nil
}

// IsS3CSV reports whether CSVPath points to an object storage location.
func (c *ConfigSpec) IsS3CSV() bool {
	return strings.HasPrefix(c.CSVPath, "s3://")
}

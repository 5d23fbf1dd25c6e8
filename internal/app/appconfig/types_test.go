package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSpec() ConfigSpec {
	return ConfigSpec{
		Source:           SourceCSV,
		CSVPath:          "visits.csv",
		AggregateIn:      AggregateInDatabase,
		Currency:         "USD",
		VisitsTable:      "visits",
		TracingExporters: []string{"jaeger"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ConfigSpec)
		wantErr string
	}{
		{name: "valid csv", mutate: func(c *ConfigSpec) {}},
		{name: "valid postgres", mutate: func(c *ConfigSpec) {
			c.Source = SourcePostgres
			c.DatabaseURL = "postgres://localhost/visits"
		}},
		{name: "postgres without url", mutate: func(c *ConfigSpec) {
			c.Source = SourcePostgres
		}, wantErr: "VISITSTATS_DATABASE_URL"},
		{name: "csv without path", mutate: func(c *ConfigSpec) {
			c.CSVPath = ""
		}, wantErr: "VISITSTATS_CSV_PATH"},
		{name: "unknown source", mutate: func(c *ConfigSpec) {
			c.Source = "mysql"
		}, wantErr: "unknown source"},
		{name: "unknown aggregation", mutate: func(c *ConfigSpec) {
			c.AggregateIn = "gpu"
		}, wantErr: "unknown aggregation mode"},
		{name: "bad currency", mutate: func(c *ConfigSpec) {
			c.Currency = "XYZQ"
		}, wantErr: "invalid currency"},
		{name: "blank table", mutate: func(c *ConfigSpec) {
			c.VisitsTable = "  "
		}, wantErr: "visits table"},
		{name: "unknown exporter", mutate: func(c *ConfigSpec) {
			c.TracingExporters = []string{"zipkin"}
		}, wantErr: "unknown tracing exporter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validSpec()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestIsS3CSV(t *testing.T) {
	c := validSpec()
	assert.False(t, c.IsS3CSV())

	c.CSVPath = "s3://exports/visits.csv"
	assert.True(t, c.IsS3CSV())
}

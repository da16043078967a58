package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	AssistantQueriesTotal metric.Int64Counter
	AssistantNoMatchTotal metric.Int64Counter
	CatalogSize           metric.Int64Gauge
	DbQueryErrorsTotal    metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("AnimTools")
		var err error
		m := &AppMetrics{}

		m.AssistantQueriesTotal, err = meter.Int64Counter(
			"assistant_queries_total",
			metric.WithDescription("Total number of assistant queries processed"),
			metric.WithUnit("{query}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create assistant_queries_total: %v", err)
		}

		m.AssistantNoMatchTotal, err = meter.Int64Counter(
			"assistant_no_match_total",
			metric.WithDescription("Total number of assistant queries answered with a clarification"),
			metric.WithUnit("{query}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create assistant_no_match_total: %v", err)
		}

		m.CatalogSize, err = meter.Int64Gauge(
			"catalog_size",
			metric.WithDescription("Number of activities in the loaded catalog"),
			metric.WithUnit("{activity}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create catalog_size: %v", err)
		}

		m.DbQueryErrorsTotal, err = meter.Int64Counter(
			"db_query_errors_total",
			metric.WithDescription("Total number of database query errors"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_errors_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}

// Package telemetry provides view.Observer implementations that export
// region update passes as Prometheus metrics, OpenTelemetry spans and
// structured log records.
//
//	reg := prometheus.NewRegistry()
//	obs := telemetry.Multi(
//	    telemetry.NewMetrics(telemetry.WithRegistry(reg)),
//	    telemetry.NewTracing(),
//	    telemetry.NewLogObserver(logger),
//	)
//	view.Each(doc, books, row, view.WithKey(isbn), view.WithName("books"), view.WithObserver(obs))
package telemetry

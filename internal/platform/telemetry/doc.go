// Package telemetry groups operational observability for Dice Goblin.
//
// Tracing is configured by platform/otel. Prometheus metrics live in
// telemetry/metrics and are served by the roller on its metrics address.
package telemetry

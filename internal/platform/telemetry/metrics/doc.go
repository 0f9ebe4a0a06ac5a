// Package metrics collects Prometheus metrics for rolls and gRPC traffic.
//
// # Roll metrics
//
// Recorder implements the roller's observer hook and records:
//   - dicegoblin_rolls_total{result}
//   - dicegoblin_dice_sampled_total
//   - dicegoblin_roll_duration_seconds
//
// # gRPC Interceptor
//
// UnaryServerInterceptor records request counts by method and status code.
//
// Each Recorder owns its registry so tests and multiple servers in one
// process never collide on registration.
package metrics

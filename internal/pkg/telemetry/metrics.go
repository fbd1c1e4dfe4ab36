package telemetry

// SLI metric names used for instrumentation.
const (
	// Latency
	MetricAPILatencyP50 = "api.latency.p50"
	MetricAPILatencyP95 = "api.latency.p95"
	MetricAPILatencyP99 = "api.latency.p99"

	// Throughput
	MetricRequestsPerSec = "api.requests_per_second"

	// Pipeline
	MetricAnalysisLatency  = "siting.analysis_latency"
	MetricFallbackRate     = "siting.fallback_rate"
	MetricResolverAccuracy = "siting.resolver_accuracy_tier"

	// Availability
	MetricUptime = "service.uptime_percentage"
)

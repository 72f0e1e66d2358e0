package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 50
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":            DriverPostgres,
		"database.dsn":               "",
		"database.max_open_conns":    defaultMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.auto_migrate":      true,

		"storage.timeout":                         "5s",
		"storage.retry.max_attempts":              defaultRetryMaxAttempts,
		"storage.retry.initial_interval":          "100ms",
		"storage.retry.max_interval":              "2s",
		"storage.retry.multiplier":                defaultRetryMultiplier,
		"storage.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.circuit_breaker.timeout":         "30s",
		"storage.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"storage.rate_limit.rps":                  0,
		"storage.rate_limit.burst":                defaultRateLimitBurst,

		"cache.enabled":  false,
		"cache.addr":     "localhost:6379",
		"cache.password": "",
		"cache.db":       0,
		"cache.ttl":      "1m",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "stage-service",
	}
}

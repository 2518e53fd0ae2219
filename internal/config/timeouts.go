package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds configurable timeout values for cloud operations.
type Timeouts struct {
	Ensure            time.Duration // Timeout for ensure (get-or-create) operations
	Delete            time.Duration // Timeout for delete operations
	RetryMaxAttempts  int           // Maximum number of retry attempts
	RetryInitialDelay time.Duration // Initial delay between retries
}

// LoadTimeouts loads timeout configuration from environment variables.
// If a variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - VNETPLAN_TIMEOUT_ENSURE (default: 2m)
//   - VNETPLAN_TIMEOUT_DELETE (default: 5m)
//   - VNETPLAN_RETRY_MAX_ATTEMPTS (default: 5)
//   - VNETPLAN_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Ensure:            parseDuration("VNETPLAN_TIMEOUT_ENSURE", 2*time.Minute),
		Delete:            parseDuration("VNETPLAN_TIMEOUT_DELETE", 5*time.Minute),
		RetryMaxAttempts:  parseInt("VNETPLAN_RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelay: parseDuration("VNETPLAN_RETRY_INITIAL_DELAY", 1*time.Second),
	}
}

func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

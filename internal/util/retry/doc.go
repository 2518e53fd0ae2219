// Package retry provides exponential backoff for transient failures.
//
// [WithExponentialBackoff] retries an operation with doubling delays,
// tunable in attempt count and initial delay. It backs the Hetzner
// Cloud API calls, which intermittently fail with locked-resource
// errors. Errors wrapped with [Fatal] abort the retry loop immediately.
package retry

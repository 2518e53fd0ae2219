// Package s3 provides a client for Hetzner Object Storage (S3-compatible),
// used to export rendered address plans as bucket objects.
package s3

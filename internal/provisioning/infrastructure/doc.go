// Package infrastructure provisions cloud networking resources on Hetzner Cloud.
//
// It creates the parent network, one subnet per planned allocation, and one
// firewall per subnet group. All resources are created idempotently and
// labeled for plan association.
package infrastructure

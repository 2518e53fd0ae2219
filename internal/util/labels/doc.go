// Package labels provides consistent labeling for Hetzner Cloud resources.
//
// All labels use the vnetplan.io domain prefix and follow a builder pattern
// for constructing label sets with plan name, group, zone, and manager
// identification.
package labels

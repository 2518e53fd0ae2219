// Package config loads, defaults and validates vnetplan configuration.
//
// Configuration is a single YAML file describing the virtual network:
// the parent address block (explicit CIDR or a named pool), the logical
// network definitions, the zone selection and optional export settings.
// Secrets such as the cloud API token can be supplied via VNETPLAN_*
// environment variables instead of the file.
package config

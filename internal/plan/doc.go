// Package plan computes the address-space layout of a virtual network.
//
// Given one parent address block, a set of logical network definitions
// and an ordered list of availability zones, it deterministically derives
// one non-overlapping subnet per (network, zone) pair and groups the
// results for access-control association.
//
// The pipeline runs strictly left to right: zone selection and parent
// block resolution feed the plan builder, whose ordered entries feed the
// allocator, whose output feeds the grouping index. Ordering is a hard
// contract throughout; the allocator assigns blocks positionally, never
// by name. The whole computation is a single deterministic transformation
// with no state shared across runs.
package plan

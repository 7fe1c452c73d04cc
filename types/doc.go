// Package types provides small generic helpers shared across packages:
// nullable value helpers and criteria based sorting.
package types

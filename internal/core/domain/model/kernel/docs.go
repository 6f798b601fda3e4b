// Package kernel contains shared value objects used across the domain model.
//
// GeoPoint represents geographic coordinates of the plant and of customers.
// UUID wraps github.com/google/uuid as the identity of persisted records.
// Both are immutable and constructor-validated.
package kernel

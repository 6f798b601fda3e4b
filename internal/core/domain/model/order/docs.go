// Package order contains the delivery order aggregate.
//
// An Order is an immutable delivery request for a volume of ready-mix
// concrete: who ordered (customer id), where it goes (coordinates), how much
// (cubic meters) and what mix (MaterialSpec). Orders are created at the API
// boundary and are read-only to the routing engine.
package order

// Package routing implements the trip-construction and fleet-scheduling
// engine for ready-mix concrete dispatch.
//
// The pipeline for one planning run:
//
//	orders
//	  └─> PartitionByCompatibility   (pools of identical material spec)
//	        └─> PriorityOrderer      (45% volume-priority / 55% shuffle)
//	              └─> DirectTripPacker   (full Big/Medium loads, defers remainders)
//	                    └─> LeftoverPairer   (two-stop pairing or solo dispatch)
//	                          └─> FleetScheduler   (plant clock, truck reuse)
//
// The engine is a greedy heuristic, deterministic for a given random source:
// it makes no optimality guarantees, it pins down a specific behavior. All
// tunables live in Settings, passed in at construction; there is no package
// state.
package routing

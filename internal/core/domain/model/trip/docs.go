// Package trip contains the dispatch work unit produced by the routing engine.
//
// A Trip is one truck departure: a truck class, one or two customer stops,
// the carried volume and the round-trip duration. RouteType tags how the trip
// was constructed (Direct full load, Shared pairing, Leftover solo). The
// fleet scheduler attaches a Schedule with the assigned truck and times.
//
// Field names and the RouteType/TruckClass wire values are a contract with
// external consumers of the schedule API and must not change.
package trip

// Package dag assembles the directed task graph: nodes keyed by unique
// task name carrying the parsed task, edges from resolved dependencies,
// and optional synthetic START/END boundary nodes that give the graph a
// single entry and exit point.
//
// AddBoundary mutates the task map and stream map it is given, keeping both
// in lockstep with the graph. That side effect is the documented contract;
// callers needing immutability must pass copies.
package dag

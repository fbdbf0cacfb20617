// Package project turns raw task records into a validated in-memory
// project model and resolves predecessor id references into named
// dependency edges.
//
// The parser is deliberately forgiving: apart from a wholly unreadable
// document (which never reaches this package), nothing is fatal. Invalid
// calendar modes, task types, offsets and predecessor references degrade to
// documented defaults with a warning on the context logger. A missing or
// unparseable project start date triggers the synthetic start-date policy
// instead of an error.
package project

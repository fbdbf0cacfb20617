// Package layout computes the geometric placement a renderer consumes:
// a stable vertical rank per chain/stream and the temporal window plus
// day-index origin of the horizontal axis.
package layout

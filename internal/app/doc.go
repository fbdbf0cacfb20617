// Package app is the composition root: it builds the logger, resolves the
// project document path to a loader, and runs the pipeline from raw
// document to rendered timeline.
package app

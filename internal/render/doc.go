// Package render defines the model handed to a renderer at the end of the
// pipeline, the Renderer interface, and an SVG implementation.
//
// Color and geometry are presentation concerns, so the task-type color
// table lives here, in the Theme, and not in the core model.
package render

// Package validation binds request data and turns validator failures into
// the 400 error envelope.
package validation

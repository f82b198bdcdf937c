// Package collision implements the collision compiler core: the pipeline
// that turns a welded, oriented triangle mesh into a binary KCL payload and
// its BCSV surface-attribute sidecar.
//
// The package is single-threaded and synchronous by design. Pack and
// PackSurfaceTypes run to completion or return an error; callers that want
// to keep a UI responsive should run them on a goroutine of their own
// choosing, the way the original editor ran its builder on a worker thread.
package collision

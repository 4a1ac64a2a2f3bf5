// Package pkgwriter is the filesystem boundary between an emission
// session and disk: it creates the output package directory and, on
// close, flushes the accumulated source to a single file within it.
// Generated code imports pkg/jsonscan like any other dependency, so
// there is no runtime file to copy alongside the output — Package's only
// job is directory setup and the final flush.
package pkgwriter

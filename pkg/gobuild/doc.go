// Package gobuild is a small append-only text builder for emitting Go
// source: indent tracking, scoped blocks, hoisted declarations, and a
// line-template helper with a caller-fill hole.
package gobuild

// Package jsongen is a schema-directed JSON parser generator. Given a
// tree of Node values describing the shape of a JSON document, it emits
// Go source declaring strongly-typed destination types and parser
// routines that decode conforming JSON into them with minimal
// allocation, deduplicating both types and parser routines across the
// tree.
package jsongen

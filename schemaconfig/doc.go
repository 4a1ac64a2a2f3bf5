// Package schemaconfig loads a schema tree from an external JSON or YAML
// description instead of constructing jsongen.Node values by hand,
// converging on the same jsongen.Node tree the core type algebra works
// with either way. A YAML document is first unmarshaled into a generic
// value via github.com/goccy/go-yaml and re-encoded to JSON via
// github.com/go-json-experiment/json, so JSON and YAML schema
// descriptions share one decode path into nodeConfig.
package schemaconfig

// Package jsonscan is the fixed set of byte-level JSON scanning
// primitives that generated parsers call: whitespace skipping, delimiter
// checks, string and number token extraction, escape unquoting, and
// value skipping. Generated code imports it like any other dependency
// rather than receiving a copied runtime file — keeping it importable
// lets it be unit-tested directly instead of only indirectly through
// generated code.
package jsonscan

// Package ai provides the GS1 Application Identifier catalog.
//
// The catalog is built once from an embedded specification table and is
// read-only afterwards. Lookup is trie-backed and supports longest-prefix
// matching over 2-, 3- and 4-digit AI codes, which is what the parsers in
// package parse rely on to find field boundaries.
package ai

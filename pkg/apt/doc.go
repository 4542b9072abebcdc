// Package apt provides access to Debian-style binary package repositories.
//
// # Overview
//
// An APT repository publishes its binary package metadata as a "Packages"
// index: a plain-text file of blank-line-separated stanzas, one stanza per
// package, usually served gzip-compressed. This package covers three
// concerns:
//
//   - Parsing the control-file stanza format into [Package] records
//   - Parsing raw Depends/Pre-Depends expressions into bare package names
//   - Fetching, decompressing and querying the index ([Index])
//
// # Querying an index
//
//	ix := apt.NewIndex(apt.IndexOptions{})
//	info, err := ix.Info(ctx, "bash", "")
//	deps, err := ix.Dependencies(ctx, "bash", "")
//
// The index is populated lazily on the first lookup and is read-only for the
// rest of the process lifetime; there is no refresh operation. Candidate
// sources (a local file and/or a list of mirror URLs) are tried strictly in
// order until one succeeds.
//
// # Simplifications
//
// This is not a full APT resolver. Version constraints, architecture
// multiplexing, virtual packages and OR-alternative backtracking are out of
// scope: only the first alternative of each OR group is honored, and the
// index holds exactly one record per package name.
package apt

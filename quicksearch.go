// Package quicksearch builds and queries a compact, file-based search
// index over the Unity scripting reference. An index is built offline
// against a specific documentation version and persisted as an immutable
// artifact file; at query time the best artifact for the running Unity
// version is selected from a set of search roots and answers tokenized,
// scored, prefix-aware lookups without a server process.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. goquery/,
// fs/) or the process they orchestrate (build/).
package quicksearch

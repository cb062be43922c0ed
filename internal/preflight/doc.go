// Package preflight provides readiness checks for the filesystem paths
// charkit reads and writes.
//
// "charkit config validate" runs RunAll and prints one status line per
// check. A failed check does not stop extraction or matching: a missing
// catalog only yields empty rankings, and write failures surface when the
// output is written.
package preflight

// Package main hosts the charkit CLI entrypoint and command graph.
//
// The Cobra command tree covers both halves of the toolkit: extract turns a
// text sample into a language's character inventory, and match ranks the
// keyboard catalog against an inventory. Configuration resolution, flag
// overrides and logger setup happen once in the command context so
// subcommands only gather input and render results.
//
// New behaviour belongs in the internal packages first; commands here stay
// declarative.
package main

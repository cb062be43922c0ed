// Package api holds the workflows shared by the charkit commands. Each
// workflow takes a request carrying the loaded configuration and a logger,
// drives the domain packages, and returns a result the CLI renders.
//
// # Workflows
//
// RunExtract: resolve the language code, extract the inventory from text and
// write <language>_unique_characters.txt.
//
// RunMatch: load an inventory, compare it with every catalog keyboard, rank
// the keyboards and write <input>_most_similar_keyboards.csv.
//
// ListCatalog: load the keyboard catalog for inspection.
//
// # Design Notes
//
// A missing or unreadable catalog is not an error: matching proceeds against
// an empty catalog and still writes a report holding only the label rows. An
// empty or missing inventory stops RunMatch before anything is written.
package api

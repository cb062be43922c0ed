// Package console renders command output for terminals: rounded tables,
// labelled status lines and section headers. Colour is applied only when the
// destination is a terminal.
package console

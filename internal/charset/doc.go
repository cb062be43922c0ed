// Package charset models character inventories: sets of single characters
// that can be loaded from one-per-line files, compared, and listed in code
// point order.
package charset

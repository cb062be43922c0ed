// Package keyboard loads the keyboard layout catalog: a CSV metadata table
// with the header id,name,locale,source_file,all_characters whose last column
// holds the layout's characters as a comma-joined list.
//
// The catalog is read once, in file order and without filtering. A missing or
// unreadable catalog is logged and treated as empty so callers can still
// produce an (empty) report.
package keyboard
